package store

import (
	"encoding/json"
	"fmt"

	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/storage"
)

// Seed force-writes the built-in dataset, overwriting whatever the
// persistent store holds. Used by the seed command to reset a shop.
func Seed(kv storage.KV) error {
	write := func(key string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		if err := kv.Set(key, string(raw)); err != nil {
			return fmt.Errorf("persist %s: %w", key, err)
		}
		return nil
	}

	seeds := []struct {
		key string
		val any
	}{
		{storage.KeyProducts, defaultProducts()},
		{storage.KeyCategories, defaultCategories()},
		{storage.KeyBlogPosts, defaultBlogPosts()},
		{storage.KeySettings, defaultSettings()},
		{storage.KeyCart, []models.CartItem{}},
		{storage.KeyWishlist, []models.Product{}},
		{storage.KeyOrders, []models.Order{}},
		{storage.KeySubmissions, []models.FormSubmission{}},
		{storage.KeyUsers, []models.User{}},
	}
	for _, s := range seeds {
		if err := write(s.key, s.val); err != nil {
			return err
		}
	}
	return kv.Set(storage.KeyLanguage, "en")
}

// Built-in dataset used whenever a collection is missing from the
// persistent store or fails to parse. Seeding happens once, at store
// construction.

func intPtr(v int) *int { return &v }

func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:           "1",
			Name:         "Eternal Rose LED String Lights",
			Price:        1200,
			SalePrice:    intPtr(950),
			Description:  "Beautifully crafted LED rose string lights that bring a magical glow to any room. Perfect for bedrooms, weddings, or festive decorations.",
			Category:     "Lighting",
			Images:       []string{"https://i.ibb.co/VYd8K4g/product-1.jpg", "https://i.ibb.co/Vq8sYtV/product-2.jpg"},
			Stock:        50,
			IsFeatured:   true,
			IsNewArrival: true,
			Tags:         []string{"roses", "led", "romantic"},
			Slug:         "eternal-rose-led-lights",
		},
		{
			ID:           "2",
			Name:         "Celestial Star & Moon Curtain",
			Price:        1800,
			SalePrice:    intPtr(1550),
			Description:  "Transform your windows into a galaxy with these warm white star and moon curtain lights.",
			Category:     "Lighting",
			Images:       []string{"https://i.ibb.co/zXn2H1B/product-3.jpg", "https://i.ibb.co/N7x1n9v/product-4.jpg"},
			Stock:        30,
			IsFeatured:   true,
			IsNewArrival: false,
			Tags:         []string{"stars", "curtain", "warm-white"},
			Slug:         "celestial-star-moon-curtain",
		},
	}
}

func defaultCategories() []models.Category {
	return []models.Category{
		{ID: "c1", Name: "Lighting", Slug: "lighting", Image: "https://picsum.photos/seed/light/400/400"},
		{ID: "c2", Name: "Wall Decor", Slug: "wall-decor", Image: "https://picsum.photos/seed/wall/400/400"},
		{ID: "c3", Name: "Furniture Accents", Slug: "furniture", Image: "https://picsum.photos/seed/furniture/400/400"},
		{ID: "c4", Name: "Accessories", Slug: "accessories", Image: "https://picsum.photos/seed/access/400/400"},
	}
}

func defaultBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:      "b1",
			Title:   "5 Ways to Brighten Your Living Room",
			Excerpt: "Light is the soul of a home. Discover how small changes can make a big impact.",
			Content: "Light is the soul of a home. Discover how small changes can make a big impact. From changing bulbs to adding accent lighting, we explore it all.",
			Author:  "Admin",
			Date:    "2024-03-20",
			Image:   "https://picsum.photos/seed/blog1/800/400",
			Slug:    "5-ways-to-brighten-living-room",
			Tags:    []string{"Interior Design", "Lighting"},
		},
	}
}

func defaultTestimonials() []models.Testimonial {
	return []models.Testimonial{
		{ID: "t1", Name: "Sara Khan", Role: "Homemaker", Content: "The lights from Brightify BD changed the entire vibe of my bedroom. Absolutely love the quality!", Rating: 5, Avatar: "https://i.pravatar.cc/150?u=sara"},
		{ID: "t2", Name: "Ahmed Rezwan", Role: "Architect", Content: "Premium finishing and very fast delivery. Highly recommended for home staging.", Rating: 5, Avatar: "https://i.pravatar.cc/150?u=ahmed"},
	}
}

func defaultSettings() models.AppSettings {
	return models.AppSettings{
		SiteName:        "Brightify BD",
		LogoURL:         "https://i.ibb.co/v4ynLLwk/logo.jpg",
		HeroImage:       "https://images.unsplash.com/photo-1618221195710-dd6b41faaea6?q=80&w=2000&auto=format&fit=crop",
		PrimaryColor:    "#7c3aed",
		ContactEmail:    "info@brightifybd.com",
		PhoneNumber:     "+880 1711 111111",
		Address:         "Gulshan, Dhaka, Bangladesh",
		FacebookURL:     "https://www.facebook.com/BrightifyBD",
		ShowPromoBanner: true,
		PromoText:       "Ramadan Special: Up to 25% Off on All Lighting!",
		BkashNumber:     "01711111111",
		NagadNumber:     "01711111111",
		AdminPassword:   "admin",
		Moderators:      []models.Moderator{},
	}
}
