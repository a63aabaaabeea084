package loader

// LoaderBuilderOption is a functional option for configuring a Loader via NewLoader.
type LoaderBuilderOption func(*loader)

// WithLayout is an option builder that pre-populates the layout cache.
//
// Parameters:
//   - key: the cache key for the layout
//   - layout: the layout to cache
//
// Returns:
//   - LoaderBuilderOption: a function that applies the layout option to a loader
func WithLayout(key string, layout *Layout) LoaderBuilderOption {
	return func(l *loader) {
		l.layoutCache[key] = layout
	}
}
