package recommend

// Fixed category → cover-image lookup, first match wins in this order.
var imageBuckets = []struct {
	categories []Category
	url        string
}{
	{[]Category{CategoryCafe}, "https://images.unsplash.com/photo-1554118811-1e0d58224f24?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
	{[]Category{CategoryPark}, "https://images.unsplash.com/photo-1496425745709-5f92975952f6?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
	{[]Category{CategoryMuseum, CategoryCulture}, "https://images.unsplash.com/photo-1503152398395-d8a22e821c74?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
	{[]Category{CategoryBar}, "https://images.unsplash.com/photo-1514362545857-3bc1654f783b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
	{[]Category{CategoryRestaurant}, "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
	{[]Category{CategoryGym}, "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"},
}

const defaultImageURL = "https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"

// ImageURL picks the cover image for a venue from its classified categories.
func ImageURL(tags TagSet) string {
	for _, bucket := range imageBuckets {
		if tags.HasAny(bucket.categories...) {
			return bucket.url
		}
	}
	return defaultImageURL
}
