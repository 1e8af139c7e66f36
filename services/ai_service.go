package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"shophub/models"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// ErrAIUnavailable is returned when no API key was configured at startup.
var ErrAIUnavailable = errors.New("AI content generation is not configured")

// AIService drafts marketing copy on demand. It is never part of the
// request-serving critical path: every method is invoked explicitly from the
// admin tooling.
type AIService struct {
	llm *openai.LLM
}

func NewAIService(apiKey, model string) (*AIService, error) {
	if apiKey == "" {
		return &AIService{}, nil
	}

	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize language model: %w", err)
	}
	return &AIService{llm: llm}, nil
}

func (s *AIService) Available() bool {
	return s.llm != nil
}

func (s *AIService) generate(ctx context.Context, system, prompt string, maxTokens int, opts ...llms.CallOption) (string, error) {
	if s.llm == nil {
		return "", ErrAIUnavailable
	}

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt),
	}

	opts = append([]llms.CallOption{
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(maxTokens),
	}, opts...)

	resp, err := s.llm.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion")
	}
	return resp.Choices[0].Content, nil
}

func (s *AIService) GenerateProductDescription(ctx context.Context, productName string, features []string, category string) (string, error) {
	system := "You are an expert e-commerce copywriter specializing in product descriptions that convert. You write engaging, benefit-focused copy that helps customers make informed purchase decisions."
	prompt := fmt.Sprintf(`Write a compelling, SEO-optimized product description for an e-commerce blog.

Product: %s
Category: %s
Key Features: %s

Requirements:
- Write in an engaging, persuasive tone
- Highlight the key benefits (not just features)
- Include relevant keywords naturally
- Keep it between 150-200 words
- Focus on how the product solves customer problems
- Make it scannable with short paragraphs

Description:`, productName, category, strings.Join(features, ", "))

	return s.generate(ctx, system, prompt, 500)
}

func (s *AIService) GenerateBlogOutline(ctx context.Context, topic string, targetProducts, keywords []string) (string, error) {
	system := "You are an expert content strategist for e-commerce blogs. You create comprehensive outlines that blend valuable content with strategic product placements."
	prompt := fmt.Sprintf(`Create a detailed blog post outline for an e-commerce content marketing article.

Topic: %s
Featured Products: %s
Target Keywords: %s

Requirements:
- Create a comprehensive outline with 6-8 main sections
- Include natural product placements throughout
- Focus on providing value and solving customer problems
- Make it SEO-friendly with keyword integration
- Include introduction and conclusion sections
- Add subheadings for better readability

Outline:`, topic, strings.Join(targetProducts, ", "), strings.Join(keywords, ", "))

	return s.generate(ctx, system, prompt, 1000)
}

// truncateForPrompt cuts s to at most limit bytes without splitting a rune,
// so the prompt never carries invalid UTF-8.
func truncateForPrompt(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

func (s *AIService) GenerateMetaDescription(ctx context.Context, title, content string) (string, error) {
	content = truncateForPrompt(content, 500)

	system := "You are an SEO expert specializing in meta descriptions that improve click-through rates and accurately represent content."
	prompt := fmt.Sprintf(`Create an SEO-optimized meta description for this blog post.

Title: %s
Content Summary: %s...

Requirements:
- Keep it between 150-160 characters
- Include the main keyword naturally
- Make it compelling and click-worthy
- End with a call-to-action if possible
- Accurately summarize the content

Meta Description:`, title, content)

	return s.generate(ctx, system, prompt, 100)
}

func (s *AIService) GenerateProductComparison(ctx context.Context, products []models.ComparisonProduct) (string, error) {
	details := make([]string, 0, len(products))
	for i, p := range products {
		details = append(details, fmt.Sprintf("Product %d: %s\nPrice: $%.2f\nFeatures: %s",
			i+1, p.Name, p.Price, strings.Join(p.Features, ", ")))
	}

	system := "You are a product review expert who creates fair, detailed comparisons that help customers make informed decisions."
	prompt := fmt.Sprintf(`Write a detailed product comparison article for these products:

%s

Requirements:
- Create a balanced, objective comparison
- Highlight unique strengths of each product
- Include a comparison table format in the text
- Recommend which product is best for different user types
- Keep it informative and helpful
- Length: 400-500 words

Comparison:`, strings.Join(details, "\n\n"))

	return s.generate(ctx, system, prompt, 1500)
}

func (s *AIService) GenerateBuyingGuide(ctx context.Context, category, priceRange string, keyFactors []string) (string, error) {
	system := "You are a shopping expert who creates helpful buying guides that empower customers to make confident purchase decisions."
	prompt := fmt.Sprintf(`Create a comprehensive buying guide for %s.

Price Range: %s
Key Factors to Consider: %s

Requirements:
- Start with why this purchase matters
- Explain key features and specifications to look for
- Provide tips for getting the best value
- Include common mistakes to avoid
- Add a decision-making framework
- Make it actionable and practical
- Length: 600-800 words

Buying Guide:`, category, priceRange, strings.Join(keyFactors, ", "))

	return s.generate(ctx, system, prompt, 2000)
}

func (s *AIService) SummarizeReviews(ctx context.Context, reviews []models.ReviewInput) (*models.ReviewSummary, error) {
	texts := make([]string, 0, len(reviews))
	for i, r := range reviews {
		texts = append(texts, fmt.Sprintf("Review %d (%d stars): %s", i+1, r.Rating, r.Comment))
	}

	system := "You are a review analysis expert who extracts key insights from customer feedback to help potential buyers."
	prompt := fmt.Sprintf(`Analyze these customer reviews and create a summary:

%s

Provide:
1. A brief summary paragraph (2-3 sentences)
2. Top 5 Pros (bullet points)
3. Top 5 Cons (bullet points)

Format as JSON:
{
  "summary": "...",
  "pros": ["...", "..."],
  "cons": ["...", "..."]
}`, strings.Join(texts, "\n\n"))

	raw, err := s.generate(ctx, system, prompt, 800, llms.WithTemperature(0.5), llms.WithJSONMode())
	if err != nil {
		return nil, err
	}

	var summary models.ReviewSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, fmt.Errorf("failed to parse review summary: %w", err)
	}
	return &summary, nil
}
