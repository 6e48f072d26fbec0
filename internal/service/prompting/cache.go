package prompting

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// cachingService decorates a Service with an in-memory TTL cache keyed by
// technique task and input. Identical requests inside the TTL window are
// served without touching the upstream API.
type cachingService struct {
	inner  Service
	cache  *gocache.Cache
	logger *slog.Logger
}

// NewCachingService wraps inner with a TTL response cache. Expired entries
// are purged in the background at twice the TTL.
func NewCachingService(inner Service, ttl time.Duration, logger *slog.Logger) Service {
	return &cachingService{
		inner:  inner,
		cache:  gocache.New(ttl, 2*ttl),
		logger: logger,
	}
}

// cacheKey derives a stable key from the task name and its input fields.
func cacheKey(task string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(task))
	for _, p := range parts {
		// Length-prefix each part so ("ab","c") and ("a","bc") differ.
		fmt.Fprintf(h, "|%d:%s", len(p), p)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// through serves from cache when possible, otherwise calls fn and stores the
// result. Errors are never cached.
func (c *cachingService) through(
	ctx context.Context,
	key string,
	fn func() (*TechniqueResult, error),
) (*TechniqueResult, error) {
	if cached, ok := c.cache.Get(key); ok {
		if result, ok := cached.(*TechniqueResult); ok {
			c.logger.DebugContext(ctx, "serving technique result from cache", "key", key)
			return result, nil
		}
	}

	result, err := fn()
	if err != nil {
		return nil, err
	}

	c.cache.SetDefault(key, result)
	return result, nil
}

func (c *cachingService) FewShotSentiment(ctx context.Context, text string) (*TechniqueResult, error) {
	return c.through(ctx, cacheKey("sentiment_analysis", text), func() (*TechniqueResult, error) {
		return c.inner.FewShotSentiment(ctx, text)
	})
}

func (c *cachingService) FewShotMath(ctx context.Context, problem string) (*TechniqueResult, error) {
	return c.through(ctx, cacheKey("math_solving", problem), func() (*TechniqueResult, error) {
		return c.inner.FewShotMath(ctx, problem)
	})
}

func (c *cachingService) FewShotNER(ctx context.Context, text string) (*TechniqueResult, error) {
	return c.through(ctx, cacheKey("named_entity_recognition", text), func() (*TechniqueResult, error) {
		return c.inner.FewShotNER(ctx, text)
	})
}

func (c *cachingService) FewShotClassification(ctx context.Context, text string) (*TechniqueResult, error) {
	return c.through(ctx, cacheKey("text_classification", text), func() (*TechniqueResult, error) {
		return c.inner.FewShotClassification(ctx, text)
	})
}

func (c *cachingService) ChainOfThoughtMath(ctx context.Context, problem string) (*TechniqueResult, error) {
	return c.through(ctx, cacheKey("math_reasoning", problem), func() (*TechniqueResult, error) {
		return c.inner.ChainOfThoughtMath(ctx, problem)
	})
}

func (c *cachingService) ChainOfThoughtLogic(ctx context.Context, problem string) (*TechniqueResult, error) {
	return c.through(ctx, cacheKey("logical_reasoning", problem), func() (*TechniqueResult, error) {
		return c.inner.ChainOfThoughtLogic(ctx, problem)
	})
}

func (c *cachingService) ChainOfThoughtAnalysis(ctx context.Context, problem string) (*TechniqueResult, error) {
	return c.through(ctx, cacheKey("complex_analysis", problem), func() (*TechniqueResult, error) {
		return c.inner.ChainOfThoughtAnalysis(ctx, problem)
	})
}

func (c *cachingService) TreeOfThoughtExplore(
	ctx context.Context,
	problem string,
	maxApproaches int,
) (*TechniqueResult, error) {
	key := cacheKey("multi_approach_exploration", problem, fmt.Sprintf("%d", maxApproaches))
	return c.through(ctx, key, func() (*TechniqueResult, error) {
		return c.inner.TreeOfThoughtExplore(ctx, problem, maxApproaches)
	})
}

func (c *cachingService) SelfConsistencyValidate(
	ctx context.Context,
	question string,
	numSamples int,
) (*TechniqueResult, error) {
	key := cacheKey("consistency_validation", question, fmt.Sprintf("%d", numSamples))
	return c.through(ctx, key, func() (*TechniqueResult, error) {
		return c.inner.SelfConsistencyValidate(ctx, question, numSamples)
	})
}

func (c *cachingService) MetaPromptOptimize(ctx context.Context, task, currentPrompt string) (*TechniqueResult, error) {
	key := cacheKey("prompt_optimization", task, currentPrompt)
	return c.through(ctx, key, func() (*TechniqueResult, error) {
		return c.inner.MetaPromptOptimize(ctx, task, currentPrompt)
	})
}

func (c *cachingService) MetaTaskAnalyze(ctx context.Context, task string) (*TechniqueResult, error) {
	return c.through(ctx, cacheKey("task_analysis", task), func() (*TechniqueResult, error) {
		return c.inner.MetaTaskAnalyze(ctx, task)
	})
}

func (c *cachingService) Info() ServiceInfo {
	return c.inner.Info()
}

var _ Service = (*cachingService)(nil)
