package usecase

import (
	"github.com/lexi-lab/lexiscan/pkg/domain/interfaces"
	"github.com/lexi-lab/lexiscan/pkg/service/extract"
	"github.com/lexi-lab/lexiscan/pkg/service/knowledge"
)

// UseCases bundles the analyze and chat flows with their collaborators.
// Storage and metadata are optional; when absent the corresponding
// persistence step is simply not attempted.
type UseCases struct {
	extractor *extract.Service
	kb        *knowledge.Base
	genAI     interfaces.GenAI
	storage   interfaces.ObjectStore
	metadata  interfaces.MetadataSink
}

// Option is a functional option for UseCases configuration
type Option func(*UseCases)

// WithGenAI sets the generative AI collaborator
func WithGenAI(genAI interfaces.GenAI) Option {
	return func(uc *UseCases) {
		uc.genAI = genAI
	}
}

// WithObjectStore enables best-effort upload of original file bytes
func WithObjectStore(store interfaces.ObjectStore) Option {
	return func(uc *UseCases) {
		uc.storage = store
	}
}

// WithMetadataSink enables best-effort metadata logging
func WithMetadataSink(sink interfaces.MetadataSink) Option {
	return func(uc *UseCases) {
		uc.metadata = sink
	}
}

// New creates the use case layer
func New(extractor *extract.Service, kb *knowledge.Base, opts ...Option) *UseCases {
	uc := &UseCases{
		extractor: extractor,
		kb:        kb,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
