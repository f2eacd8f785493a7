package dataset

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "upstreamcli/internal/errors"
	"upstreamcli/internal/infrastructure"
)

func TestProvider_CachesDataset(t *testing.T) {
	p := NewProvider(fixture, Options{}, WithMetrics(infrastructure.NoopReportMetrics()))
	assert.Nil(t, p.Current())

	first, err := p.Get(context.Background())
	require.NoError(t, err)
	second, err := p.Get(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Same(t, first, p.Current())
}

func TestProvider_ConcurrentGet(t *testing.T) {
	p := NewProvider(fixture, Options{})

	var wg sync.WaitGroup
	results := make([]*Dataset, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ds, err := p.Get(context.Background())
			assert.NoError(t, err)
			results[i] = ds
		}(i)
	}
	wg.Wait()

	for _, ds := range results {
		require.NotNil(t, ds)
		assert.Equal(t, 6, ds.Len())
	}
}

func TestProvider_Reload(t *testing.T) {
	path := writeCSV(t, "Lote,Tipo de Hidrocarburo,Año\n88,Gas,2023\n")
	p := NewProvider(path, Options{})

	ds, err := p.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())

	require.NoError(t, os.WriteFile(path, []byte("Lote,Tipo de Hidrocarburo,Año\n88,Gas,2023\n56,Gas,2023\n"), 0644))
	reloaded, err := p.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())

	require.NoError(t, os.Remove(path))
	_, err = p.Reload(context.Background())
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeFileNotFound))
	assert.Same(t, reloaded, p.Current(), "failed reload keeps the previous dataset")
}
