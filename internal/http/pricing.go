package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type pricingPlan struct {
	Name      string   `json:"name"`
	Price     int      `json:"price"`
	Period    string   `json:"period"`
	Features  []string `json:"features"`
	CTA       string   `json:"cta"`
	Highlight bool     `json:"highlight,omitempty"`
}

// pricingPlans is served as-is; the catalog changes with marketing releases,
// not at runtime.
var pricingPlans = []pricingPlan{
	{
		Name:     "Starter",
		Price:    0,
		Period:   "mo",
		Features: []string{"Up to 3 projects", "Basic analytics", "Community support"},
		CTA:      "Get started",
	},
	{
		Name:      "Growth",
		Price:     19,
		Period:    "mo",
		Features:  []string{"Unlimited projects", "Advanced analytics", "Email support"},
		CTA:       "Start free trial",
		Highlight: true,
	},
	{
		Name:     "Scale",
		Price:    49,
		Period:   "mo",
		Features: []string{"Priority support", "SSO & Roles", "Custom integrations"},
		CTA:      "Contact sales",
	},
}

func (h *Handler) pricing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": pricingPlans})
}
