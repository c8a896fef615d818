package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mcastellan/shopcore/docs"
	"github.com/mcastellan/shopcore/internal/cart"
	"github.com/mcastellan/shopcore/internal/category"
	"github.com/mcastellan/shopcore/internal/config"
	"github.com/mcastellan/shopcore/internal/content"
	"github.com/mcastellan/shopcore/internal/coupon"
	"github.com/mcastellan/shopcore/internal/db"
	"github.com/mcastellan/shopcore/internal/favorite"
	"github.com/mcastellan/shopcore/internal/httpx"
	"github.com/mcastellan/shopcore/internal/notification"
	"github.com/mcastellan/shopcore/internal/order"
	"github.com/mcastellan/shopcore/internal/product"
	"github.com/mcastellan/shopcore/internal/rating"
	"github.com/mcastellan/shopcore/internal/user"
)

// tokenAuthenticator adapts the user repository to the middleware contract.
type tokenAuthenticator struct{ users user.Repository }

func (a tokenAuthenticator) Authenticate(ctx context.Context, token string) (httpx.Principal, error) {
	u, err := a.users.GetByToken(ctx, token)
	if err != nil {
		return httpx.Principal{}, err
	}
	if !u.IsActive {
		return httpx.Principal{}, user.ErrTokenInvalid
	}
	return httpx.Principal{UserID: u.ID, IsStaff: u.IsStaff}, nil
}

// @title shopcore API
// @version 1.0
// @description Store backend: catalog, carts, checkout, orders, coupons.
// @BasePath /
func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("[db] connect: %v", err)
	}
	defer pool.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, pool); err != nil {
			log.Fatalf("[db] migrate: %v", err)
		}
	}

	userRepo := user.NewPGRepo(pool)
	users := user.NewService(userRepo)
	categories := category.NewPGRepo(pool)
	products := product.NewPGRepo(pool)
	ratings := rating.NewPGRepo(pool)
	carts := cart.NewPGRepo(pool)
	orders := order.NewPGRepo(pool)
	coupons := coupon.NewPGRepo(pool, cfg.CouponNotifyLimit)
	favorites := favorite.NewPGRepo(pool)
	notifications := notification.NewPGRepo(pool)
	contents := content.NewPGRepo(pool)

	r := newRouter(deps{
		users:         users,
		auth:          tokenAuthenticator{users: userRepo},
		categories:    categories,
		products:      products,
		ratings:       ratings,
		carts:         carts,
		orders:        orders,
		coupons:       coupons,
		favorites:     favorites,
		notifications: notifications,
		contents:      contents,
	})

	log.Printf("[api] listening on %s", cfg.Addr)
	log.Fatal(r.Run(cfg.Addr))
}

type deps struct {
	users         *user.Service
	auth          httpx.Authenticator
	categories    category.Repository
	products      product.Repository
	ratings       rating.Repository
	carts         cart.Repository
	orders        order.Repository
	coupons       coupon.Repository
	favorites     favorite.Repository
	notifications notification.Repository
	contents      content.Repository
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger())

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	r.POST("/auth/register", registerHandler(d.users))
	r.POST("/auth/login", loginHandler(d.users))

	r.GET("/categories", listCategoriesHandler(d.categories))
	r.GET("/categories/:id", getCategoryHandler(d.categories))
	r.GET("/categories/:id/products", listProductsByCategoryHandler(d.categories, d.products))

	r.GET("/products", listProductsHandler(d.products))
	r.GET("/products/search", searchProductsHandler(d.products))
	r.GET("/products/:id", getProductHandler(d.products))
	r.GET("/products/:id/ratings", listRatingsHandler(d.ratings))

	r.GET("/content/privacy-policy", getPrivacyPolicyHandler(d.contents))
	r.GET("/content/faqs", listFAQsHandler(d.contents))
	r.GET("/content/faq-categories", listFAQCategoriesHandler())
	r.GET("/content/contacts", listContactsHandler(d.contents))
	r.GET("/content/sliders", listSlidersHandler(d.contents))

	// everything below needs a token
	auth := r.Group("/", httpx.TokenAuth(d.auth))

	auth.POST("/auth/logout", logoutHandler(d.users))
	auth.GET("/profile", getProfileHandler(d.users))
	auth.PUT("/profile", updateProfileHandler(d.users))
	auth.PUT("/profile/password", updatePasswordHandler(d.users))
	auth.DELETE("/profile", deleteAccountHandler(d.users))

	auth.POST("/products/:id/ratings", rateProductHandler(d.ratings))
	auth.DELETE("/ratings/:id", deleteRatingHandler(d.ratings))

	auth.GET("/cart", getCartHandler(d.carts))
	auth.POST("/cart/items", addCartItemHandler(d.carts))
	auth.PUT("/cart/items/:productID", updateCartItemHandler(d.carts))
	auth.DELETE("/cart/items/:productID", removeCartItemHandler(d.carts))
	auth.DELETE("/cart", clearCartHandler(d.carts))
	auth.POST("/cart/merge", mergeCartHandler(d.carts))
	auth.POST("/cart/checkout", checkoutHandler(d.carts))

	auth.GET("/orders", listMyOrdersHandler(d.orders))
	auth.GET("/orders/:id", getOrderHandler(d.orders))
	auth.POST("/orders/:id/items", addOrderItemHandler(d.orders))
	auth.DELETE("/orders/:id/items/:productID", removeOrderItemHandler(d.orders))
	auth.PUT("/orders/:id/status", updateOrderStatusHandler(d.orders))

	auth.POST("/coupons/validate", validateCouponHandler(d.coupons))

	auth.GET("/favorites", listFavoritesHandler(d.favorites))
	auth.POST("/favorites/:productID/toggle", toggleFavoriteHandler(d.favorites))
	auth.GET("/favorites/:productID/check", checkFavoriteHandler(d.favorites))

	auth.GET("/notifications", listNotificationsHandler(d.notifications))
	auth.PUT("/notifications/:id/read", markNotificationReadHandler(d.notifications))
	auth.DELETE("/notifications", clearNotificationsHandler(d.notifications))

	// staff-only admin surface
	staff := auth.Group("/admin", httpx.RequireStaff())

	staff.POST("/categories", createCategoryHandler(d.categories))
	staff.PUT("/categories/:id", updateCategoryHandler(d.categories))
	staff.DELETE("/categories/:id", deleteCategoryHandler(d.categories))

	staff.POST("/products", createProductHandler(d.products))
	staff.PUT("/products/:id", updateProductHandler(d.products))
	staff.DELETE("/products/:id", deleteProductHandler(d.products))

	staff.GET("/orders", listAllOrdersHandler(d.orders))

	staff.GET("/coupons", listCouponsHandler(d.coupons))
	staff.POST("/coupons", createCouponHandler(d.coupons))
	staff.PUT("/coupons/:id", updateCouponHandler(d.coupons))
	staff.DELETE("/coupons/:id", deleteCouponHandler(d.coupons))

	staff.PUT("/content/privacy-policy", upsertPrivacyPolicyHandler(d.contents))
	staff.POST("/content/faqs", createFAQHandler(d.contents))
	staff.PUT("/content/faqs/:id", updateFAQHandler(d.contents))
	staff.DELETE("/content/faqs/:id", deleteFAQHandler(d.contents))
	staff.POST("/content/contacts", createContactHandler(d.contents))
	staff.DELETE("/content/contacts/:id", deleteContactHandler(d.contents))
	staff.POST("/content/sliders", createSliderHandler(d.contents))
	staff.DELETE("/content/sliders/:id", deleteSliderHandler(d.contents))

	return r
}
