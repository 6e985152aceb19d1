package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type BlockType string

const (
	BlockText      BlockType = "text"
	BlockImage     BlockType = "image"
	BlockImageText BlockType = "imageText"
	BlockCarousel  BlockType = "carousel"
)

type BlockLayout string

const (
	// LayoutImgLeft renders the image beside the text, LayoutImgBlock above it.
	LayoutImgLeft  BlockLayout = "img-left"
	LayoutImgBlock BlockLayout = "img-block"
)

// CarouselImage is one entry of a carousel block.
type CarouselImage struct {
	ImageURL string `json:"imageUrl"`
	Alt      string `json:"alt,omitempty"`
	Caption  string `json:"caption,omitempty"`
}

// ContentBlock is one unit of an article body, discriminated by Type.
// Blocks are only ever replaced as a whole sequence on article save.
type ContentBlock struct {
	Type          BlockType       `json:"type"`
	TextHTML      string          `json:"textHtml,omitempty"`
	ArabicContent string          `json:"arabicContent,omitempty"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	Caption       string          `json:"caption,omitempty"`
	Alt           string          `json:"alt,omitempty"`
	Layout        BlockLayout     `json:"layout,omitempty"`
	Images        []CarouselImage `json:"images,omitempty"`
}

var (
	blockTypes   = []interface{}{BlockText, BlockImage, BlockImageText, BlockCarousel}
	blockLayouts = []interface{}{BlockLayout(""), LayoutImgLeft, LayoutImgBlock}
)

// Validate enforces the tagged-union invariants: a known type, a known
// layout, and a resolvable image reference for image-bearing blocks.
func (b ContentBlock) Validate() error {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.Type,
			validation.Required.Error("block type is required"),
			validation.In(blockTypes...).Error("unknown block type"),
		),
		validation.Field(&b.Layout,
			validation.In(blockLayouts...).Error("unknown block layout"),
		),
	)
	if err != nil {
		return err
	}

	switch b.Type {
	case BlockImage, BlockImageText:
		if b.ImageURL == "" {
			return validation.Errors{
				"imageUrl": validation.NewError("image_url_required", "image blocks require an image url"),
			}
		}
	case BlockCarousel:
		if len(b.Images) == 0 {
			return validation.Errors{
				"images": validation.NewError("images_required", "carousel blocks require at least one image"),
			}
		}
		for _, img := range b.Images {
			if img.ImageURL == "" {
				return validation.Errors{
					"images": validation.NewError("image_url_required", "every carousel image requires an image url"),
				}
			}
		}
	}
	return nil
}

// ValidateBlocks validates a whole replacement sequence.
func ValidateBlocks(blocks []ContentBlock) error {
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	return nil
}
