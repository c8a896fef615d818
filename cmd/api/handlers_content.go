package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellan/shopcore/internal/content"
)

func getPrivacyPolicyHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.ActivePolicy(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

type policyRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func upsertPrivacyPolicyHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req policyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := repo.UpsertPolicy(c.Request.Context(), &content.PrivacyPolicy{
			Title:   req.Title,
			Content: req.Content,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func listFAQsHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListFAQs(c.Request.Context(), c.Query("category"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

func listFAQCategoriesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": content.FAQCategories})
	}
}

type faqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	IsActive bool   `json:"is_active"`
}

func createFAQHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req faqRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" || req.Answer == "" {
			badRequest(c, "question and answer are required")
			return
		}
		out, err := repo.CreateFAQ(c.Request.Context(), &content.FAQ{
			Question: req.Question,
			Answer:   req.Answer,
			Category: req.Category,
			IsActive: req.IsActive,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

func updateFAQHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req faqRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := repo.UpdateFAQ(c.Request.Context(), &content.FAQ{
			ID:       c.Param("id"),
			Question: req.Question,
			Answer:   req.Answer,
			Category: req.Category,
			IsActive: req.IsActive,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func deleteFAQHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.DeleteFAQ(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			fail(c, content.ErrNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listContactsHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListContacts(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

type contactRequest struct {
	ContactType string `json:"contact_type" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Value       string `json:"value" binding:"required"`
	IsActive    bool   `json:"is_active"`
}

func createContactHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := repo.CreateContact(c.Request.Context(), &content.Contact{
			ContactType: req.ContactType,
			Title:       req.Title,
			Value:       req.Value,
			IsActive:    req.IsActive,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

func deleteContactHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.DeleteContact(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			fail(c, content.ErrNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listSlidersHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListSliders(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

type sliderRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	CategoryID  string `json:"category_id"`
	IsActive    bool   `json:"is_active"`
}

func createSliderHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sliderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		out, err := repo.CreateSlider(c.Request.Context(), &content.Slider{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			CategoryID:  req.CategoryID,
			IsActive:    req.IsActive,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

func deleteSliderHandler(repo content.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.DeleteSlider(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			fail(c, content.ErrNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
