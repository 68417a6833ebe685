package http

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"site-backend/internal/repository"
	"site-backend/internal/service"
	"site-backend/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	accounts   service.AccountService
	posts      service.PostService
	contact    service.ContactService
	storage    storage.Service
	bucket     string
	presignTTL time.Duration
	db         *sql.DB
}

func NewHandler(
	accounts service.AccountService,
	posts service.PostService,
	contact service.ContactService,
	store storage.Service,
	bucket string,
	presignTTL time.Duration,
	db *sql.DB,
) *Handler {
	return &Handler{
		accounts:   accounts,
		posts:      posts,
		contact:    contact,
		storage:    store,
		bucket:     bucket,
		presignTTL: presignTTL,
		db:         db,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "backend running"})
	})

	api := router.Group("/api")
	{
		api.GET("/hello", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
		})
		api.GET("/status", h.status)
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.GET("/pricing", h.pricing)
		api.GET("/blog", h.listPosts)
		api.GET("/blog/:slug", h.getPost)
		api.POST("/contact", h.submitContact)
		api.GET("/storage/objects", h.listObjects)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: result.Token, Name: result.Name, Email: result.Email})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: result.Token, Name: result.Name, Email: result.Email})
}

type postListItem struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	CoverImage *string  `json:"cover_image"`
	Tags       []string `json:"tags"`
	CreatedAt  *string  `json:"created_at"`
}

type postResponse struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	CoverImage *string  `json:"cover_image"`
	Tags       []string `json:"tags"`
	CreatedAt  *string  `json:"created_at"`
}

func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.posts.ListPosts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := make([]postListItem, len(posts))
	for i := range posts {
		resp[i] = postListItem{
			Title:      posts[i].Title,
			Slug:       posts[i].Slug,
			Excerpt:    posts[i].Excerpt,
			CoverImage: h.coverImageURL(c, posts[i].CoverImage),
			Tags:       tagsOrEmpty(posts[i].Tags),
			CreatedAt:  timeOrNil(posts[i].CreatedAt),
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getPost(c *gin.Context) {
	post, err := h.posts.GetPost(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, postResponse{
		Title:      post.Title,
		Slug:       post.Slug,
		Excerpt:    post.Excerpt,
		Content:    post.Content,
		CoverImage: h.coverImageURL(c, post.CoverImage),
		Tags:       tagsOrEmpty(post.Tags),
		CreatedAt:  timeOrNil(post.CreatedAt),
	})
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (h *Handler) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.contact.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id})
}

type statusResponse struct {
	Backend  string   `json:"backend"`
	Database string   `json:"database"`
	Tables   []string `json:"tables"`
}

// status reports backend and database health for quick diagnostics.
func (h *Handler) status(c *gin.Context) {
	resp := statusResponse{
		Backend:  "running",
		Database: "not connected",
		Tables:   []string{},
	}

	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			resp.Database = "error: " + err.Error()
		} else {
			resp.Database = "connected"
			resp.Tables = h.listTables(c)
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listTables(c *gin.Context) []string {
	tables := []string{}
	rows, err := h.db.QueryContext(c.Request.Context(), `
SELECT name FROM sqlite_master
WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
ORDER BY name
LIMIT 10`)
	if err != nil {
		return tables
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			break
		}
		tables = append(tables, name)
	}
	return tables
}

type storageObjectResponse struct {
	Key          string  `json:"key"`
	Size         int64   `json:"size"`
	LastModified *string `json:"last_modified,omitempty"`
}

func (h *Handler) listObjects(c *gin.Context) {
	if h.storage == nil || h.bucket == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage service not configured"})
		return
	}

	objects, err := h.storage.ListObjects(c.Request.Context(), h.bucket, c.Query("prefix"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]storageObjectResponse, len(objects))
	for i := range objects {
		resp[i] = storageObjectResponse{
			Key:  objects[i].Key,
			Size: objects[i].Size,
		}
		if objects[i].LastModified != nil && !objects[i].LastModified.IsZero() {
			v := objects[i].LastModified.Format(time.RFC3339)
			resp[i].LastModified = &v
		}
	}
	c.JSON(http.StatusOK, resp)
}

// coverImageURL resolves a stored cover image value for the response. Object
// keys are exchanged for presigned URLs when storage is configured; absolute
// URLs and unresolvable keys pass through untouched.
func (h *Handler) coverImageURL(c *gin.Context, value string) *string {
	if value == "" {
		return nil
	}
	if h.storage == nil || h.bucket == "" || strings.Contains(value, "://") {
		return &value
	}
	url, err := h.storage.PresignGet(c.Request.Context(), h.bucket, value, h.presignTTL)
	if err != nil {
		return &value
	}
	return &url
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

func timeOrNil(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}
