package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentBlockValidate(t *testing.T) {
	ok := []ContentBlock{
		{Type: BlockText, TextHTML: "<p>Hi</p>"},
		{Type: BlockText}, // empty text renders nothing but is not invalid
		{Type: BlockImage, ImageURL: "https://cdn.example.com/a.jpg"},
		{Type: BlockImageText, ImageURL: "https://cdn.example.com/a.jpg", TextHTML: "<p>x</p>", Layout: LayoutImgLeft},
		{Type: BlockImageText, ImageURL: "https://cdn.example.com/a.jpg", Layout: LayoutImgBlock},
		{Type: BlockCarousel, Images: []CarouselImage{{ImageURL: "https://cdn.example.com/1.jpg"}}},
	}
	for i, b := range ok {
		assert.NoError(t, b.Validate(), "block %d should validate", i)
	}

	bad := []ContentBlock{
		{}, // no type
		{Type: "video"},
		{Type: BlockImage},     // missing image url
		{Type: BlockImageText}, // missing image url
		{Type: BlockCarousel},  // no images
		{Type: BlockText, Layout: "img-right"},
		{Type: BlockCarousel, Images: []CarouselImage{{Alt: "no url"}}},
	}
	for i, b := range bad {
		assert.Error(t, b.Validate(), "block %d should be rejected", i)
	}
}

func TestValidateBlocks(t *testing.T) {
	blocks := []ContentBlock{
		{Type: BlockText, TextHTML: "<p>ok</p>"},
		{Type: BlockImage},
	}
	require.Error(t, ValidateBlocks(blocks))
	require.NoError(t, ValidateBlocks(blocks[:1]))
	require.NoError(t, ValidateBlocks(nil))
}
