package handlers

import (
	"context"
	"regexp"
	"sync/atomic"

	"github.com/gin-gonic/gin"

	"Storefront/catalog"
	"Storefront/models"
	"Storefront/pricing"
	"Storefront/repository"
	"Storefront/store"
)

// Env bundles the handlers' dependencies: the catalog plus one repository per
// persisted entity, all sharing the configured record store.
type Env struct {
	Catalog   *catalog.Catalog
	Carts     *repository.CartRepository
	Users     *repository.UserRepository
	Orders    *repository.OrderRepository
	Addresses *repository.AddressRepository
	Favorites *repository.FavoriteRepository
	Profiles  *repository.ProfileRepository
	Sessions  *repository.SessionRepository
	JWTSecret string

	// cartCount mirrors the header badge: refreshed through the store's
	// change notification, not on every read.
	cartCount int64
}

// TrackCartCount subscribes the badge counter to cart change notifications.
// The counter is seeded from the store first, so a persistent backend with an
// existing cart reports the right badge before the first mutation.
func (env *Env) TrackCartCount(s store.Store) {
	refresh := func() {
		atomic.StoreInt64(&env.cartCount, int64(env.Carts.Count(context.Background())))
	}
	refresh()
	s.Subscribe(store.KeyCart, refresh)
}

func (env *Env) CartCount() int64 {
	return atomic.LoadInt64(&env.cartCount)
}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// isValidEmail applies the same loose check every form in the UI used.
func isValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// sessionEmail returns the logged-in account email, if any.
func sessionEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("Email")
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok && s != ""
}

// productView shapes a catalog product for list responses. A nil price
// renders as "Price upon request" instead of a number.
func productView(p *models.Product) gin.H {
	priceDisplay := "Price upon request"
	if p.Price != nil {
		priceDisplay = pricing.FormatCents(pricing.ToCents(p.Price))
	}
	return gin.H{
		"id":            p.ID,
		"name":          p.Name,
		"brand":         p.Brand,
		"category":      p.Category,
		"price":         p.Price,
		"priceDisplay":  priceDisplay,
		"thumbnail":     p.Thumbnail,
		"rating":        p.Rating,
		"reviews_count": p.ReviewsCount,
		"badges": gin.H{
			"sale":     p.OnSale,
			"new":      p.NewArrival,
			"featured": p.Featured,
			"trending": p.Trending,
		},
	}
}

func productViews(products []models.Product) []gin.H {
	views := make([]gin.H, len(products))
	for i := range products {
		views[i] = productView(&products[i])
	}
	return views
}
