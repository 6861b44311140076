package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"nl-task-parser/internal/nlparser"
	pkgLog "nl-task-parser/pkg/log"
)

type implUseCase struct {
	l               pkgLog.Logger
	parser          *nlparser.Parser
	cache           *expirable.LRU[string, nlparser.ParsedTask]
	location        *time.Location
	defaultLanguage string
	maxInputLength  int
	clock           func() time.Time
}

// Config carries the service settings of the use case.
type Config struct {
	DefaultLanguage string
	Location        *time.Location // day boundary for cached relative dates
	MaxInputLength  int            // in runes
	CacheSize       int            // 0 disables the cache
	CacheTTL        time.Duration
	Clock           func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, parser *nlparser.Parser, cfg Config) *implUseCase {
	uc := &implUseCase{
		l:               l,
		parser:          parser,
		location:        cfg.Location,
		defaultLanguage: cfg.DefaultLanguage,
		maxInputLength:  cfg.MaxInputLength,
		clock:           cfg.Clock,
	}
	if uc.location == nil {
		uc.location = time.UTC
	}
	if uc.clock == nil {
		uc.clock = time.Now
	}
	if cfg.CacheSize > 0 {
		uc.cache = expirable.NewLRU[string, nlparser.ParsedTask](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return uc
}
