package handlers

import (
	"net/http"
	"strconv"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/services"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	blogService *services.BlogService
	storage     *services.StorageService
	bucket      string
}

func NewBlogHandler(blogService *services.BlogService, storage *services.StorageService, bucket string) *BlogHandler {
	return &BlogHandler{blogService: blogService, storage: storage, bucket: bucket}
}

// ListBlogs godoc
// @Summary      List all blog posts
// @Tags         blogs
// @Produce      json
// @Success      200 {array} Blog
// @Router       /api/v1/blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	blogs, err := h.blogService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// GetBlog godoc
// @Summary      Get a blog post
// @Tags         blogs
// @Produce      json
// @Param        id path int true "Blog ID"
// @Success      200 {object} Blog
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/blogs/{id} [get]
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid blog id"})
		return
	}

	blog, err := h.blogService.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, blog)
}

// GetBlogsByCategory godoc
// @Summary      List blog posts in a category
// @Tags         blogs
// @Produce      json
// @Param        categoryId path int true "Category ID"
// @Success      200 {array} Blog
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/blogs/category/{categoryId} [get]
func (h *BlogHandler) GetBlogsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
		return
	}

	blogs, err := h.blogService.GetByCategory(uint(categoryID))
	if err != nil {
		status := http.StatusInternalServerError
		if err == services.ErrCategoryNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// CreateBlog godoc
// @Summary      Create a blog post
// @Description  Multipart form: category_id, title, description, author_name and an optional image file
// @Tags         blogs
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} Blog
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/blogs [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.PostForm("category_id"), 10, 64)

	input := services.CreateBlogInput{
		CategoryID:  uint(categoryID),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		AuthorName:  c.PostForm("author_name"),
	}

	if file, err := c.FormFile("image"); err == nil {
		path, url, err := h.storage.Upload(h.bucket, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload blog image: " + err.Error()})
			return
		}
		input.StoragePath = path
		input.ImageURL = url
	}

	blog, err := h.blogService.Create(input)
	if err != nil {
		status := http.StatusBadRequest
		if err == services.ErrCategoryNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, blog)
}

// UpdateBlog godoc
// @Summary      Update a blog post
// @Tags         blogs
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Blog ID"
// @Success      200 {object} Blog
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/blogs/{id} [put]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid blog id"})
		return
	}

	existing, err := h.blogService.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	var input services.UpdateBlogInput

	if raw := c.PostForm("category_id"); raw != "" {
		id64, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
			return
		}
		categoryID := uint(id64)
		input.CategoryID = &categoryID
	}
	if title := c.PostForm("title"); title != "" {
		input.Title = &title
	}
	if description := c.PostForm("description"); description != "" {
		input.Description = &description
	}
	if author := c.PostForm("author_name"); author != "" {
		input.AuthorName = &author
	}

	if file, err := c.FormFile("image"); err == nil {
		path, url, err := h.storage.Upload(h.bucket, file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to upload blog image: " + err.Error()})
			return
		}
		_ = h.storage.Remove(h.bucket, existing.StoragePath)
		input.StoragePath = &path
		input.ImageURL = &url
	}

	blog, err := h.blogService.Update(uint(id), input)
	if err != nil {
		status := http.StatusBadRequest
		if err == services.ErrBlogNotFound || err == services.ErrCategoryNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// DeleteBlog godoc
// @Summary      Delete a blog post
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Blog ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid blog id"})
		return
	}

	storagePath, err := h.blogService.Delete(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	_ = h.storage.Remove(h.bucket, storagePath)

	c.JSON(http.StatusOK, MessageResponse{Message: "blog has been successfully deleted"})
}
