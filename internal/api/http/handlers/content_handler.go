package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// ContentHandler covers blogs, docs and FAQs. Slug lookups are public
// content surfaces so they sit alongside the id routes.
type ContentHandler struct {
	blogs repository.BlogRepository
	docs  repository.DocRepository
	faqs  repository.FAQRepository
}

// NewContentHandler constructs handler.
func NewContentHandler(blogs repository.BlogRepository, docs repository.DocRepository, faqs repository.FAQRepository) *ContentHandler {
	return &ContentHandler{blogs: blogs, docs: docs, faqs: faqs}
}

func contentFilter(c *fiber.Ctx) (category *string, published *bool) {
	category = optionalQuery(c, "category")
	// Unpublished rows are hidden unless the caller opts out with
	// published_only=false.
	if queryBool(c, "published_only", true) {
		v := true
		published = &v
	}
	return category, published
}

// CreateBlog POST /blogs.
func (h *ContentHandler) CreateBlog(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Slug == "" {
		return apperrors.NewValidationError("title and slug required", nil)
	}

	taken, err := h.blogs.SlugExists(c.Context(), req.Slug, "")
	if err != nil {
		return apperrors.MapError(err)
	}
	if taken {
		return apperrors.NewConflict("slug already in use", fiber.Map{"slug": req.Slug})
	}

	blog := &domain.Blog{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		Tags:          req.Tags,
		Published:     req.Published,
		Featured:      req.Featured,
		PublishDate:   req.PublishDate,
		CreatedBy:     actorRef(principal),
	}
	if err := h.blogs.Create(c.Context(), blog); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewBlogResponse(blog)})
}

// ListBlogs GET /blogs.
func (h *ContentHandler) ListBlogs(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	category, published := contentFilter(c)
	blogs, err := h.blogs.List(c.Context(), repository.BlogFilter{
		Category:  category,
		Published: published,
		Limit:     queryInt(c, "limit", 100),
		Offset:    queryInt(c, "skip", 0),
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.BlogResponse, 0, len(blogs))
	for i := range blogs {
		items = append(items, dto.NewBlogResponse(&blogs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// BlogCategories GET /blogs/categories.
func (h *ContentHandler) BlogCategories(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	categories, err := h.blogs.Categories(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": categories})
}

// GetBlog GET /blogs/:id.
func (h *ContentHandler) GetBlog(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	blog, err := h.blogs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewBlogResponse(blog)})
}

// GetBlogBySlug GET /blogs/slug/:slug.
func (h *ContentHandler) GetBlogBySlug(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	blog, err := h.blogs.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return apperrors.MapError(err)
	}
	if !blog.Published {
		return apperrors.NewNotFound("blog")
	}
	return c.JSON(fiber.Map{"data": dto.NewBlogResponse(blog)})
}

// UpdateBlog PUT /blogs/:id.
func (h *ContentHandler) UpdateBlog(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	id := c.Params("id")
	if req.Slug != nil {
		taken, err := h.blogs.SlugExists(c.Context(), *req.Slug, id)
		if err != nil {
			return apperrors.MapError(err)
		}
		if taken {
			return apperrors.NewConflict("slug already in use", fiber.Map{"slug": *req.Slug})
		}
	}
	blog, err := h.blogs.Update(c.Context(), id, repository.BlogUpdate{
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		Tags:          req.Tags,
		Published:     req.Published,
		Featured:      req.Featured,
		PublishDate:   req.PublishDate,
		UpdatedBy:     actorRef(principal),
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewBlogResponse(blog)})
}

// DeleteBlog DELETE /blogs/:id.
func (h *ContentHandler) DeleteBlog(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.blogs.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "blog deleted"}})
}

// CreateDoc POST /docs.
func (h *ContentHandler) CreateDoc(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateDocRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Title == "" || req.Slug == "" {
		return apperrors.NewValidationError("title and slug required", nil)
	}

	taken, err := h.docs.SlugExists(c.Context(), req.Slug, "")
	if err != nil {
		return apperrors.MapError(err)
	}
	if taken {
		return apperrors.NewConflict("slug already in use", fiber.Map{"slug": req.Slug})
	}

	doc := &domain.Doc{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		Published: req.Published,
		Featured:  req.Featured,
		CreatedBy: actorRef(principal),
	}
	if err := h.docs.Create(c.Context(), doc); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDocResponse(doc)})
}

// ListDocs GET /docs.
func (h *ContentHandler) ListDocs(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	category, published := contentFilter(c)
	docs, err := h.docs.List(c.Context(), repository.DocFilter{
		Category:  category,
		Published: published,
		Limit:     queryInt(c, "limit", 100),
		Offset:    queryInt(c, "skip", 0),
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.DocResponse, 0, len(docs))
	for i := range docs {
		items = append(items, dto.NewDocResponse(&docs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// DocCategories GET /docs/categories.
func (h *ContentHandler) DocCategories(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	categories, err := h.docs.Categories(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": categories})
}

// GetDoc GET /docs/:id.
func (h *ContentHandler) GetDoc(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	doc, err := h.docs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewDocResponse(doc)})
}

// GetDocBySlug GET /docs/slug/:slug.
func (h *ContentHandler) GetDocBySlug(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	doc, err := h.docs.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return apperrors.MapError(err)
	}
	if !doc.Published {
		return apperrors.NewNotFound("doc")
	}
	return c.JSON(fiber.Map{"data": dto.NewDocResponse(doc)})
}

// UpdateDoc PUT /docs/:id.
func (h *ContentHandler) UpdateDoc(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateDocRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	id := c.Params("id")
	if req.Slug != nil {
		taken, err := h.docs.SlugExists(c.Context(), *req.Slug, id)
		if err != nil {
			return apperrors.MapError(err)
		}
		if taken {
			return apperrors.NewConflict("slug already in use", fiber.Map{"slug": *req.Slug})
		}
	}
	doc, err := h.docs.Update(c.Context(), id, repository.DocUpdate{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      req.Tags,
		Published: req.Published,
		Featured:  req.Featured,
		UpdatedBy: actorRef(principal),
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewDocResponse(doc)})
}

// DeleteDoc DELETE /docs/:id.
func (h *ContentHandler) DeleteDoc(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.docs.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "doc deleted"}})
}

// CreateFAQ POST /faqs.
func (h *ContentHandler) CreateFAQ(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Question == "" || req.Answer == "" {
		return apperrors.NewValidationError("question and answer required", nil)
	}

	faq := &domain.FAQ{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Published:  req.Published,
		OrderIndex: req.OrderIndex,
		CreatedBy:  actorRef(principal),
	}
	if err := h.faqs.Create(c.Context(), faq); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewFAQResponse(faq)})
}

// ListFAQs GET /faqs.
func (h *ContentHandler) ListFAQs(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	category, published := contentFilter(c)
	faqs, err := h.faqs.List(c.Context(), repository.FAQFilter{
		Category:  category,
		Published: published,
		Limit:     queryInt(c, "limit", 100),
		Offset:    queryInt(c, "skip", 0),
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.FAQResponse, 0, len(faqs))
	for i := range faqs {
		items = append(items, dto.NewFAQResponse(&faqs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// FAQCategories GET /faqs/categories.
func (h *ContentHandler) FAQCategories(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	categories, err := h.faqs.Categories(c.Context())
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": categories})
}

// GetFAQ GET /faqs/:id.
func (h *ContentHandler) GetFAQ(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	faq, err := h.faqs.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewFAQResponse(faq)})
}

// UpdateFAQ PUT /faqs/:id.
func (h *ContentHandler) UpdateFAQ(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	faq, err := h.faqs.Update(c.Context(), c.Params("id"), repository.FAQUpdate{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Published:  req.Published,
		OrderIndex: req.OrderIndex,
		UpdatedBy:  actorRef(principal),
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewFAQResponse(faq)})
}

// DeleteFAQ DELETE /faqs/:id.
func (h *ContentHandler) DeleteFAQ(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.faqs.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "faq deleted"}})
}
