package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

type RedisStatsTestSuite struct {
	suite.Suite
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  stats.Repository
	ctx   context.Context
}

func (s *RedisStatsTestSuite) SetupTest() {
	s.ctx = context.Background()
	var client redisclient.Client
	client, s.mr = testutils.CreateTestRedisClient(s.T())
	s.clock = clock.NewFixed(time.Unix(1_700_000_000, 0))

	repo, err := stats.NewRedis(&stats.Config{Client: client, Clock: s.clock, TTL: time.Minute})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisStatsTestSuite) TestPutThenGet() {
	char := builders.NewCharacterBuilder().WithID("char_1").Build()
	calculated := engine.CalculateAllStats(char)

	put, err := s.repo.Put(s.ctx, stats.PutInput{
		CharacterID: "char_1",
		Fingerprint: "abc",
		Stats:       &calculated,
		Defaulted:   []string{"speed"},
		Warnings:    []stats.Warning{{Field: "properties", Message: "two shields", Code: "MULTIPLE_SHIELDS"}},
	})
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Add(time.Minute), put.ExpiresAt)
	s.Equal(time.Minute, s.mr.TTL("character_stats:char_1"))

	got, err := s.repo.Get(s.ctx, stats.GetInput{CharacterID: "char_1", Fingerprint: "abc"})
	s.Require().NoError(err)
	s.Equal(calculated, *got.Stats)
	s.Equal([]string{"speed"}, got.Defaulted)
	s.Require().Len(got.Warnings, 1)
	s.Equal("MULTIPLE_SHIELDS", got.Warnings[0].Code)
	s.Equal(s.clock.Now().Unix(), got.CachedAt.Unix())
}

func (s *RedisStatsTestSuite) TestGet_FingerprintMismatchIsMiss() {
	calculated := engine.CalculateAllStats(nil)
	_, err := s.repo.Put(s.ctx, stats.PutInput{CharacterID: "char_1", Fingerprint: "old", Stats: &calculated})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, stats.GetInput{CharacterID: "char_1", Fingerprint: "new"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisStatsTestSuite) TestGet_Expired() {
	calculated := engine.CalculateAllStats(nil)
	_, err := s.repo.Put(s.ctx, stats.PutInput{CharacterID: "char_1", Fingerprint: "fp", Stats: &calculated})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, stats.GetInput{CharacterID: "char_1", Fingerprint: "fp"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisStatsTestSuite) TestGet_CorruptEntryDropped() {
	s.Require().NoError(s.mr.Set("character_stats:char_1", "{not json"))

	_, err := s.repo.Get(s.ctx, stats.GetInput{CharacterID: "char_1", Fingerprint: "fp"})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists("character_stats:char_1"))
}

func (s *RedisStatsTestSuite) TestDelete() {
	calculated := engine.CalculateAllStats(nil)
	_, err := s.repo.Put(s.ctx, stats.PutInput{CharacterID: "char_1", Fingerprint: "fp", Stats: &calculated})
	s.Require().NoError(err)

	_, err = s.repo.Delete(s.ctx, stats.DeleteInput{CharacterID: "char_1"})
	s.Require().NoError(err)
	s.False(s.mr.Exists("character_stats:char_1"))

	_, err = s.repo.Delete(s.ctx, stats.DeleteInput{CharacterID: "char_1"})
	s.NoError(err)
}

func (s *RedisStatsTestSuite) TestValidation() {
	_, err := s.repo.Get(s.ctx, stats.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, stats.PutInput{CharacterID: "char_1"})
	s.True(errors.IsInvalidArgument(err))

	_, err = stats.NewRedis(&stats.Config{})
	s.True(errors.IsInvalidArgument(err))
}

func TestRedisStatsSuite(t *testing.T) {
	suite.Run(t, new(RedisStatsTestSuite))
}

func TestFingerprint(t *testing.T) {
	char := builders.NewCharacterBuilder().Build()

	first, err := stats.Fingerprint(char, "first")
	if err != nil {
		t.Fatal(err)
	}

	char.UpdatedAt += 100
	same, _ := stats.Fingerprint(char, "first")
	if same != first {
		t.Fatal("timestamps must not change the fingerprint")
	}

	other, _ := stats.Fingerprint(char, "highest")
	if other == first {
		t.Fatal("salt must change the fingerprint")
	}

	char.Level = 2
	changed, _ := stats.Fingerprint(char, "first")
	if changed == first {
		t.Fatal("level change must change the fingerprint")
	}
}
