package bloom_test

import (
	"fmt"
	"testing"

	"github.com/pawhq/paw/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("https://example.com/page"))

	f.Add("https://example.com/page")

	assert.True(t, f.Test("https://example.com/page"))
	assert.False(t, f.Test("https://example.com/other"))
}

func TestFilter_FragmentNormalization(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	f.Add("https://example.com/page")

	assert.True(t, f.Test("https://example.com/page#section"))
	assert.True(t, f.Test("https://example.com/page#other"))
	assert.False(t, f.Test("https://example.com/page2"))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.com/page", bloom.Normalize("https://example.com/page#intro"))
	assert.Equal(t, "https://example.com/page", bloom.Normalize("https://example.com/page"))
	assert.Equal(t, "https://example.com/", bloom.Normalize("https://example.com/#"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	for i := 0; i < 100; i++ {
		f.Add(fmt.Sprintf("https://example.com/page/%d", i))
	}

	count := f.EstimatedCount()
	assert.InDelta(t, 100, count, 10)
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 0.01)

	urls := make([]string, 500)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://docs.example.com/api/v%d", i)
		f.Add(urls[i])
	}

	for _, u := range urls {
		assert.True(t, f.Test(u), "added URL must always test positive: %s", u)
	}
}
