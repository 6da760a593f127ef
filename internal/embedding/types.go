package embedding

type GenerateInput struct {
	Text string
}

type GenerateOutput struct {
	Vector []float32
}

type GenerateManyInput struct {
	Texts []string
}

// GenerateManyOutput holds one vector per input text, in input order.
type GenerateManyOutput struct {
	Vectors [][]float32
}

// SimilarityInput compares every text against Texts[Reference].
type SimilarityInput struct {
	Texts     []string
	Reference int
}

type SimilarityOutput struct {
	Vectors      [][]float32
	Similarities []float64
}
