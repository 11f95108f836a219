package service

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/generative-ai-go/genai"

	"github.com/momnutri/backend/config"
)

const (
	imageMaxAttempts = 3
	imageRetryDelay  = time.Second
)

// ImageService generates dish photos with the Gemini image model and stores
// them locally or in S3. When generation fails it degrades to a deterministic
// placeholder URL, never an error.
type ImageService struct {
	genAI    *genai.Client
	model    string
	s3Config *config.S3Config
	imageDir string
	baseURL  string
	secure   bool
}

// NewImageService creates an ImageService. A nil genai client disables
// generation entirely; every dish then gets a placeholder URL. secure upgrades
// stored http: URLs to https: on the way out.
func NewImageService(client *genai.Client, model string, s3Config *config.S3Config, imageDir, baseURL string, secure bool) *ImageService {
	return &ImageService{
		genAI:    client,
		model:    model,
		s3Config: s3Config,
		imageDir: imageDir,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		secure:   secure,
	}
}

// FixURL repairs a stored image URL before it is served. Rows written by
// earlier versions or edited by hand may carry empty or junk values.
func (s *ImageService) FixURL(rawURL, fallbackName string) string {
	return FixImageURL(rawURL, fallbackName, s.secure)
}

// AcquireImage returns an image URL for the dish. Generation is retried up to
// two extra times with a fixed delay; after that the placeholder URL is used.
func (s *ImageService) AcquireImage(ctx context.Context, name string, ingredients []string) string {
	if s.genAI == nil {
		return GenerateRecipeImageURL(name)
	}

	for attempt := 1; attempt <= imageMaxAttempts; attempt++ {
		url, err := s.generateOnce(ctx, name, ingredients)
		if err == nil {
			return url
		}
		log.Printf("[ImageService] attempt %d/%d for %q failed: %v", attempt, imageMaxAttempts, name, err)
		if attempt < imageMaxAttempts {
			select {
			case <-ctx.Done():
				return GenerateRecipeImageURL(name)
			case <-time.After(imageRetryDelay):
			}
		}
	}

	log.Printf("[ImageService] falling back to placeholder for %q", name)
	return GenerateRecipeImageURL(name)
}

func (s *ImageService) generateOnce(ctx context.Context, name string, ingredients []string) (string, error) {
	model := s.genAI.GenerativeModel(s.model)
	model.SetTemperature(0.4)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockMediumAndAbove},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockMediumAndAbove},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(buildImagePrompt(name, ingredients)))
	if err != nil {
		return "", fmt.Errorf("failed to generate image: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("image response has no candidates")
	}

	var imageData []byte
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			imageData = blob.Data
			break
		}
	}
	if len(imageData) == 0 {
		return "", fmt.Errorf("no image data in response")
	}

	return s.store(ctx, name, imageData)
}

// store persists the image bytes under a content-addressed filename and
// returns the public URL, preferring S3 when configured.
func (s *ImageService) store(ctx context.Context, name string, data []byte) (string, error) {
	sum := md5.Sum([]byte(name))
	filename := sanitizeFileName(name, hex.EncodeToString(sum[:]))

	if s.s3Config != nil {
		key := "recipes/" + filename
		_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(s.s3Config.BucketName),
			Key:         aws.String(key),
			Body:        bytes.NewReader(data),
			ContentType: aws.String("image/png"),
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload to S3: %w", err)
		}
		return s.s3Config.PublicURL + "/" + key, nil
	}

	dir := filepath.Join(s.imageDir, "recipes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return s.baseURL + "/recipes/" + filename, nil
}

func buildImagePrompt(name string, ingredients []string) string {
	ingredientsText := ""
	if len(ingredients) > 0 {
		ingredientsText = fmt.Sprintf("，主要食材包括%s", strings.Join(ingredients, "、"))
	}
	return fmt.Sprintf(`生成一张高质量的"%s"美食照片%s。
食物应放在精美的餐盘或盘子上，呈现出专业的美食摄影效果，光线明亮自然，
构图精美，突出食材的质感和色彩。请使用逼真的3D渲染风格，细节丰富。
不要包含文字或水印。`, name, ingredientsText)
}
