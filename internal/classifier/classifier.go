package classifier

// Classifier turns a normalized image tensor into a probability distribution
// over the known disease classes. Implementations are loaded once at startup
// and treated as read-only afterwards.
type Classifier interface {
	// Classify accepts tensor data shaped [1, H, W, 3] and returns one
	// probability per class.
	Classify(input []float32) ([]float32, error)

	// Classes returns the class labels in the model's output ordering.
	Classes() []string

	// ImageSize returns the expected input width/height in pixels.
	ImageSize() int
}
