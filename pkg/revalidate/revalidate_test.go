package revalidate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationStartsAtZero(t *testing.T) {
	registry := NewRegistry()

	assert.Equal(t, uint64(0), registry.Generation("/never-touched"))
}

func TestInvalidateBumpsEachPath(t *testing.T) {
	registry := NewRegistry()

	registry.Invalidate("/", "/admin")
	registry.Invalidate("/")

	assert.Equal(t, uint64(2), registry.Generation("/"))
	assert.Equal(t, uint64(1), registry.Generation("/admin"))
	assert.Equal(t, uint64(0), registry.Generation("/blog"))
}

func TestInvalidateConcurrent(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registry.Invalidate("/admin/products")
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(50), registry.Generation("/admin/products"))
}
