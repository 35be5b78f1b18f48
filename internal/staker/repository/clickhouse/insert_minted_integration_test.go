package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/yody-staker/internal/staker/model"
)

func (s *RepositorySuite) TestInsertMinted() {
	now := time.Now().UTC().Truncate(time.Second)
	records := []model.MintedRecord{
		newMinted(10, "a", now, 2),
		newMinted(11, "b", now.Add(16*time.Second), 3),
	}

	s.metrics.EXPECT().Observe("insert_minted", model.Regtest, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertMinted(s.testCtx, records))
	s.Equal(uint64(2), s.countRows("staker_minted_blocks"))
	s.Equal(uint64(5), s.countRows("staker_minted_payouts"))
}

func (s *RepositorySuite) TestInsertMintedEmpty() {
	s.metrics.EXPECT().Observe("insert_minted", model.Network(""), gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertMinted(s.testCtx, nil))
	s.Equal(uint64(0), s.countRows("staker_minted_blocks"))
}

func (s *RepositorySuite) TestRecentMinted() {
	now := time.Now().UTC().Truncate(time.Second)
	rejected := newMinted(12, "c", now.Add(32*time.Second), 1)
	rejected.Block.Submitted = false
	rejected.Block.RejectReason = "bad-cs-kernel"
	rejected.Block.Delegator = "d1"
	rejected.Block.DelegatorFee = 10

	s.metrics.EXPECT().Observe("insert_minted", model.Regtest, gomock.Nil(), gomock.Any()).Times(1)
	s.metrics.EXPECT().Observe("recent_minted", model.Regtest, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertMinted(s.testCtx, []model.MintedRecord{
		newMinted(10, "a", now, 1),
		newMinted(11, "b", now.Add(16*time.Second), 1),
		rejected,
	}))

	blocks, err := s.repo.RecentMinted(s.testCtx, model.Regtest, 2)
	s.Require().NoError(err)
	s.Require().Len(blocks, 2)
	got := blocks[0]
	s.Equal(rejected.Block.Timestamp.Unix(), got.Timestamp.Unix())
	got.Timestamp = rejected.Block.Timestamp
	s.Equal(rejected.Block, got)
	s.Equal(uint64(11), blocks[1].Height)
}
