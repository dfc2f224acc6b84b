package generation

import (
	"math/rand"
	"sync"
	"time"
)

const maxSeed = int64(1) << 32

// Composer derives the final model input from a canonical Request. Pure
// apart from seed generation, which draws from its own random source.
type Composer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewComposer() *Composer {
	return &Composer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Compose concatenates the user prompt with the style fragment (prompt
// first, fragment second), resolves dimensions from the aspect-ratio
// table and fixes the seed.
func (c *Composer) Compose(req *Request) ComposedPrompt {
	fragment, _ := StyleFragment(req.Style)

	dims := aspectRatioDimensions[req.AspectRatio]

	seed := c.nextSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}

	return ComposedPrompt{
		FinalPrompt:    req.Prompt + ", " + fragment,
		NegativePrompt: req.NegativePrompt,
		Width:          dims.Width,
		Height:         dims.Height,
		Seed:           seed,
	}
}

// nextSeed returns a uniformly random seed in [0, 2^32).
func (c *Composer) nextSeed() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Int63n(maxSeed)
}
