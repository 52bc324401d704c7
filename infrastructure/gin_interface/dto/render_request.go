package dto

import "github.com/kemo-beep/effectai/domain"

type RenderRequest struct {
	ID         string             `json:"id" binding:"required"`
	InputProps domain.Composition `json:"inputProps" binding:"required"`
}

type RenderResponse struct {
	RenderID   string `json:"renderId"`
	BucketName string `json:"bucketName"`
}

type ProgressRequest struct {
	ID         string `json:"id" binding:"required"`
	BucketName string `json:"bucketName" binding:"required"`
}
