//go:build integration

package revocation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"personnel/internal/auth/revocation"
	"personnel/pkg/testutil/containers"
)

type RedisTRLSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	trl   *revocation.RedisTRL
}

func TestRedisTRLSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisTRLSuite))
}

func (s *RedisTRLSuite) SetupSuite() {
	s.redis = containers.GetManager().GetRedis(s.T())
	s.trl = revocation.NewRedisTRL(s.redis.Client)
}

func (s *RedisTRLSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisTRLSuite) TestRevokeThenCheck() {
	ctx := context.Background()
	jti := uuid.NewString()

	revoked, err := s.trl.IsTokenRevoked(ctx, jti)
	s.Require().NoError(err)
	s.False(revoked)

	s.Require().NoError(s.trl.RevokeToken(ctx, jti, time.Minute))

	revoked, err = s.trl.IsTokenRevoked(ctx, jti)
	s.Require().NoError(err)
	s.True(revoked)
}

func (s *RedisTRLSuite) TestEntryExpires() {
	ctx := context.Background()
	jti := uuid.NewString()

	s.Require().NoError(s.trl.RevokeToken(ctx, jti, 50*time.Millisecond))
	s.Eventually(func() bool {
		revoked, err := s.trl.IsTokenRevoked(ctx, jti)
		return err == nil && !revoked
	}, 2*time.Second, 25*time.Millisecond)
}

func (s *RedisTRLSuite) TestRevokeTokensBatch() {
	ctx := context.Background()
	jtis := []string{uuid.NewString(), "", uuid.NewString()}

	s.Require().NoError(s.trl.RevokeTokens(ctx, jtis, time.Minute))
	for _, jti := range []string{jtis[0], jtis[2]} {
		revoked, err := s.trl.IsTokenRevoked(ctx, jti)
		s.Require().NoError(err)
		s.True(revoked)
	}
}

func (s *RedisTRLSuite) TestRejectsNonPositiveTTL() {
	s.Error(s.trl.RevokeToken(context.Background(), uuid.NewString(), 0))
}
