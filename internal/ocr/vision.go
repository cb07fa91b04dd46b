package ocr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	dcconfig "github.com/JaimeStill/document-context/pkg/config"
	"github.com/JaimeStill/document-context/pkg/document"
	"github.com/JaimeStill/document-context/pkg/encoding"
	"github.com/JaimeStill/document-context/pkg/image"
	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/kgnguhan/agentic-chaser/pkg/formatting"
	"github.com/kgnguhan/agentic-chaser/pkg/storage"
)

const visionPrompt = `You are an OCR quality assessor for scanned pension documents.
Examine the supplied page image and estimate how reliably its text could be
machine-read. Respond with JSON only:

{"confidence": <number 0-100>}`

type confidenceResponse struct {
	Confidence float64 `json:"confidence"`
}

type visionEvaluator struct {
	agent   gaconfig.AgentConfig
	storage storage.System
	logger  *slog.Logger
}

// NewVisionEvaluator creates an Evaluator backed by a vision-capable model.
// PDFs are rendered to an image of their first page before submission;
// image uploads are submitted directly.
func NewVisionEvaluator(
	agentCfg gaconfig.AgentConfig,
	store storage.System,
	logger *slog.Logger,
) Evaluator {
	return &visionEvaluator{
		agent:   agentCfg,
		storage: store,
		logger:  logger.With("system", "ocr"),
	}
}

func (v *visionEvaluator) Evaluate(ctx context.Context, storageKey, contentType string) (Result, error) {
	data, err := v.download(ctx, storageKey)
	if err != nil {
		return Result{}, err
	}

	dataURI, err := encodeForVision(data, contentType)
	if err != nil {
		v.logger.Warn("document encoding failed", "key", storageKey, "error", err)
		return Result{Status: StatusRuntimeError}, nil
	}

	a, err := agent.New(&v.agent)
	if err != nil {
		v.logger.Warn("vision agent unavailable", "error", err)
		return Result{Status: StatusUnavailable}, nil
	}

	resp, err := a.Vision(ctx, visionPrompt, []string{dataURI})
	if err != nil {
		v.logger.Warn("vision call failed", "key", storageKey, "error", err)
		return Result{Status: StatusRuntimeError}, nil
	}

	parsed, err := formatting.Parse[confidenceResponse](resp.Content())
	if err != nil {
		v.logger.Warn("confidence parse failed", "key", storageKey, "error", err)
		return Result{Status: StatusRuntimeError}, nil
	}

	confidence := clamp(parsed.Confidence, 0, 100)
	return Result{Confidence: &confidence, Status: StatusOK}, nil
}

func (v *visionEvaluator) download(ctx context.Context, storageKey string) ([]byte, error) {
	blob, err := v.storage.Download(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("download document: %w", err)
	}
	defer blob.Close()

	data, err := io.ReadAll(blob)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

func encodeForVision(data []byte, contentType string) (string, error) {
	if contentType == "application/pdf" {
		return renderFirstPage(data)
	}

	if !strings.Contains(contentType, "png") {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
	return encoding.EncodeImageDataURI(data, document.PNG)
}

func renderFirstPage(data []byte) (string, error) {
	tempDir, err := os.MkdirTemp("", "chaser-ocr-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	pdfPath := filepath.Join(tempDir, "source.pdf")
	if err := os.WriteFile(pdfPath, data, 0600); err != nil {
		return "", fmt.Errorf("write temp pdf: %w", err)
	}

	pdfDoc, err := document.OpenPDF(pdfPath)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer pdfDoc.Close()

	renderer, err := image.NewImageMagickRenderer(dcconfig.DefaultImageConfig())
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}

	page, err := pdfDoc.ExtractPage(1)
	if err != nil {
		return "", fmt.Errorf("extract page: %w", err)
	}

	img, err := page.ToImage(renderer, nil)
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}

	return encoding.EncodeImageDataURI(img, document.PNG)
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
