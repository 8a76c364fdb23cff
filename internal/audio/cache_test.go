package audio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/lingopop/internal/inference"
	mock_inference "github.com/at-ishikawa/lingopop/internal/mocks/inference"
)

func TestCache_Get(t *testing.T) {
	speech := inference.Speech{
		Present: true,
		Format:  "wav",
		Data:    []byte("RIFF....WAVE"),
	}

	t.Run("synthesizes each text at most once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_inference.NewMockClient(ctrl)
		client.EXPECT().
			GenerateSpeech(gomock.Any(), "hola").
			Return(speech, nil)
		client.EXPECT().
			GenerateSpeech(gomock.Any(), "adios").
			Return(speech, nil)

		cache := NewCache(client)
		assert.Equal(t, speech, cache.Get(context.Background(), "hola"))
		assert.Equal(t, speech, cache.Get(context.Background(), "hola"))
		assert.Equal(t, speech, cache.Get(context.Background(), "adios"))
	})

	t.Run("a failure is cached as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mock_inference.NewMockClient(ctrl)
		client.EXPECT().
			GenerateSpeech(gomock.Any(), "hola").
			Return(inference.Speech{}, errors.New("voice backend down"))

		cache := NewCache(client)
		got := cache.Get(context.Background(), "hola")
		assert.False(t, got.Present)

		// The failed text is not retried.
		got = cache.Get(context.Background(), "hola")
		assert.False(t, got.Present)
	})
}
