package service

import (
	"context"
	"fmt"
	"strings"

	"tjbuilding/internal/models"
	"tjbuilding/internal/repository"
)

const (
	defaultSuggestionLimit = 7

	keywordScore  = 1
	questionScore = 2

	defaultAnswerCategory = "default"
	emptyKnowledgeAnswer  = "The knowledge base is empty for now. Please ask an administrator to add entries."
	fallbackAnswer        = "Sorry, I did not fully understand the question. You can ask about:\n" +
		"- system features\n- viewing data\n- energy analysis\n- energy-saving advice\n- chart explanations\n\n" +
		"Or describe your question in more detail and I will do my best to help."
)

var defaultSuggestions = []string{
	"What can this system do?",
	"How do I view energy data?",
	"How should I read the consumption figures?",
	"How can we save energy?",
	"How do I view room information?",
	"How do I read the charts?",
	"How do I switch the time period?",
}

// AssistantService scores knowledge entries against a question by keyword
// containment.
type AssistantService struct {
	repo  repository.Knowledge
	limit int
}

func NewAssistantService(repo repository.Knowledge, suggestionLimit int) *AssistantService {
	if suggestionLimit <= 0 {
		suggestionLimit = defaultSuggestionLimit
	}
	return &AssistantService{repo: repo, limit: suggestionLimit}
}

// Answer returns the best-scoring active entry. Each keyword contained in the
// question scores 1 and the stored question contained in it scores 2; the
// earliest entry wins ties.
func (s *AssistantService) Answer(ctx context.Context, question string) (models.AssistantAnswer, error) {
	query := strings.ToLower(strings.TrimSpace(question))
	if query == "" {
		return models.AssistantAnswer{}, ErrEmptyQuestion
	}

	entries, err := s.repo.ListActive(ctx)
	if err != nil {
		return models.AssistantAnswer{}, fmt.Errorf("load knowledge: %w", err)
	}
	if len(entries) == 0 {
		return models.AssistantAnswer{Answer: emptyKnowledgeAnswer, Category: defaultAnswerCategory}, nil
	}

	best, bestScore := -1, 0
	for i, k := range entries {
		if sc := score(query, k); sc > bestScore {
			best, bestScore = i, sc
		}
	}
	if best < 0 {
		return models.AssistantAnswer{Answer: fallbackAnswer, Category: defaultAnswerCategory}, nil
	}
	k := entries[best]
	id := k.ID
	return models.AssistantAnswer{Answer: k.Answer, Category: k.Category, KnowledgeID: &id}, nil
}

func score(query string, k models.Knowledge) int {
	sc := 0
	for _, kw := range strings.Split(k.Keywords, ",") {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(query, kw) {
			sc += keywordScore
		}
	}
	if q := strings.ToLower(strings.TrimSpace(k.Question)); q != "" && strings.Contains(query, q) {
		sc += questionScore
	}
	return sc
}

// Suggestions returns the suggested questions. On a repository error the
// built-in list is returned together with the error.
func (s *AssistantService) Suggestions(ctx context.Context) ([]string, error) {
	out, err := s.repo.Suggested(ctx, s.limit)
	if err != nil {
		return s.fallbackSuggestions(), fmt.Errorf("load suggestions: %w", err)
	}
	if len(out) == 0 {
		return s.fallbackSuggestions(), nil
	}
	return out, nil
}

func (s *AssistantService) fallbackSuggestions() []string {
	n := s.limit
	if n > len(defaultSuggestions) {
		n = len(defaultSuggestions)
	}
	return append([]string(nil), defaultSuggestions[:n]...)
}

func (s *AssistantService) ListKnowledge(ctx context.Context) ([]models.Knowledge, error) {
	return s.repo.List(ctx)
}

func (s *AssistantService) AddKnowledge(ctx context.Context, k models.Knowledge) (int64, error) {
	if err := normalizeKnowledge(&k); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, k)
}

func (s *AssistantService) UpdateKnowledge(ctx context.Context, k models.Knowledge) error {
	if err := normalizeKnowledge(&k); err != nil {
		return err
	}
	return s.repo.Update(ctx, k)
}

func (s *AssistantService) DeleteKnowledge(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func normalizeKnowledge(k *models.Knowledge) error {
	k.Question = strings.TrimSpace(k.Question)
	k.Answer = strings.TrimSpace(k.Answer)
	if k.Question == "" || k.Answer == "" {
		return ErrInvalidKnowledge
	}
	if strings.TrimSpace(k.Category) == "" {
		k.Category = models.DefaultCategory
	}
	return nil
}
