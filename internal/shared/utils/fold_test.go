package utils

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldLower(t *testing.T) {
	tests := map[string]string{
		"Équipement":    "équipement",
		"SAINT-ÉTIENNE": "saint-étienne",
		"Œuvre ÇA":      "œuvre ça",
		"déjà bas":      "déjà bas",
		"":              "",
	}
	for in, want := range tests {
		assert.Equal(t, want, FoldLower(in), in)
	}
}

func TestFoldLower_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "élève", FoldLower("ÉLÈVE"))
			}
		}()
	}
	wg.Wait()
}
