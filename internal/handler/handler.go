package handler

import (
	"context"

	"github.com/InkwellPress/blog-service/internal/model"
	"github.com/InkwellPress/blog-service/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{viper.GetString("client.origin")},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("", h.postsList)
			posts.GET("/featured", h.postsFeatured)
			posts.GET("/search", h.postsSearch)
			posts.GET("/slug/:slug", h.postsGetBySlug)
			posts.GET("/my", h.authMiddleware, h.postsGetMy)
			posts.POST("", h.authMiddleware, h.postsCreate)
			posts.POST("/uploadImage", h.authMiddleware, h.postsUploadImage)

			post := posts.Group("/:postID")
			{
				post.GET("", h.notRequiredAuthMiddleware, h.postsGetByID)
				post.PATCH("", h.authMiddleware, h.postsEdit)
				post.PATCH("/status", h.authMiddleware, h.postsUpdateStatus)
				post.DELETE("", h.authMiddleware, h.postsDelete)
				post.POST("/like", h.authMiddleware, h.postsLike)
				post.GET("/isLiked", h.authMiddleware, h.postsIsLiked)
				post.GET("/likes", h.postsLikeCount)
				post.GET("/comments", h.commentsGet)
			}
		}

		comments := v1.Group("/comments")
		{
			comments.POST("", h.authMiddleware, h.commentsCreate)
			comments.PATCH("/:commentID", h.authMiddleware, h.commentsUpdate)
			comments.DELETE("/:commentID", h.authMiddleware, h.commentsDelete)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", h.categoriesList)
			categories.GET("/:slug/posts", h.categoriesPosts)
			categories.POST("", h.adminMiddleware, h.categoriesCreate)
			categories.PATCH("/:slug", h.adminMiddleware, h.categoriesUpdate)
			categories.DELETE("/:slug", h.adminMiddleware, h.categoriesDelete)
		}

		tags := v1.Group("/tags")
		{
			tags.GET("", h.tagsList)
			tags.GET("/:slug/posts", h.tagsPosts)
			tags.POST("", h.adminMiddleware, h.tagsCreate)
			tags.PATCH("/:slug", h.adminMiddleware, h.tagsUpdate)
			tags.DELETE("/:slug", h.adminMiddleware, h.tagsDelete)
		}

		works := v1.Group("/works")
		{
			works.GET("", h.worksList)
			works.GET("/:slug", h.worksGetBySlug)
			works.POST("", h.adminMiddleware, h.worksCreate)
			works.PATCH("/:slug", h.adminMiddleware, h.worksUpdate)
			works.DELETE("/:slug", h.adminMiddleware, h.worksDelete)
		}

		v1.GET("/authors/:userID/posts", h.notRequiredAuthMiddleware, h.authorsPosts)

		profile := v1.Group("/profile", h.authMiddleware)
		{
			profile.GET("", h.profileGet)
			profile.PATCH("", h.profileUpdate)
		}

		admin := v1.Group("/admin", h.adminMiddleware)
		{
			admin.GET("/stats", h.adminStats)
			admin.GET("/authors", h.adminAuthorsList)
			admin.POST("/authors", h.adminAuthorsCreate)
			admin.PATCH("/authors/:userID/role", h.adminAuthorsUpdateRole)
		}
	}

	return r
}

func (h *Handler) getProfileFromClaims(ctx context.Context, claims jwt.MapClaims) (*model.Profile, error) {
	idString, ok := claims["id"].(string)
	if !ok {
		return nil, errNotAuthorized
	}
	id, err := uuid.Parse(idString)
	if err != nil {
		return nil, err
	}

	profile, err := h.services.Profile.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (h *Handler) getProfileFromRequest(c *gin.Context) *model.Profile {
	profileReq, _ := c.Get("profile")

	profile, ok := profileReq.(model.Profile)
	if !ok {
		return nil
	}

	return &profile
}
