package repositories

import (
	"testing"

	"github.com/ideavault/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIdeasFiltering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresIdeaRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	createTestIdea(t, db, alice.ID, "published by alice")
	createTestIdea(t, db, bob.ID, "published by bob")
	draft := &models.Idea{CreatorID: alice.ID, Title: "draft", Content: "wip"}
	require.NoError(t, repo.CreateIdea(draft))

	published, err := repo.GetIdeas(IdeaFilter{PublishedOnly: true})
	require.NoError(t, err)
	assert.Len(t, published, 2)

	mine, err := repo.GetIdeas(IdeaFilter{CreatorID: &alice.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	minePublished, err := repo.GetIdeas(IdeaFilter{CreatorID: &alice.ID, PublishedOnly: true})
	require.NoError(t, err)
	assert.Len(t, minePublished, 1)
}

func TestFeedQueryExcludesDraftsAndStrangers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresIdeaRepository(db)
	followed := createTestUser(t, db, "followed")
	stranger := createTestUser(t, db, "stranger")

	createTestIdea(t, db, followed.ID, "followed published")
	createTestIdea(t, db, stranger.ID, "stranger published")
	draft := &models.Idea{CreatorID: followed.ID, Title: "followed draft", Content: "wip"}
	require.NoError(t, repo.CreateIdea(draft))

	feed, err := repo.GetPublishedIdeasByCreatorIDs([]uint{followed.ID})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "followed published", feed[0].Title)

	empty, err := repo.GetPublishedIdeasByCreatorIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReplaceTopics(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresIdeaRepository(db)
	topicRepo := NewPostgresTopicRepository(db)
	alice := createTestUser(t, db, "alice")

	golang := &models.Topic{Name: "go"}
	infra := &models.Topic{Name: "infra"}
	require.NoError(t, topicRepo.CreateTopic(golang))
	require.NoError(t, topicRepo.CreateTopic(infra))

	idea := &models.Idea{
		CreatorID: alice.ID,
		Title:     "tagged",
		Content:   "content",
		Topics:    []models.Topic{*golang},
	}
	require.NoError(t, repo.CreateIdea(idea))

	require.NoError(t, repo.ReplaceTopics(idea, []models.Topic{*infra}))

	got, err := repo.GetIdeaByID(idea.ID)
	require.NoError(t, err)
	require.Len(t, got.Topics, 1)
	assert.Equal(t, "infra", got.Topics[0].Name)
}
