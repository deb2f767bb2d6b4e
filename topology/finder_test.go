package topology_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr/testr"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/topocast/metrics"
	"github.com/katalvlaran/topocast/pareto"
	"github.com/katalvlaran/topocast/topology"
)

type FinderSuite struct {
	suite.Suite
	reg    *metrics.Registry
	finder *topology.Finder
}

func (s *FinderSuite) SetupTest() {
	s.reg = metrics.NewRegistry()
	f, err := topology.New(16, 4, topology.WithMetrics(s.reg), topology.WithLogger(testr.New(s.T())))
	s.Require().NoError(err)
	s.finder = f
}

func (s *FinderSuite) counter(op, outcome string) float64 {
	c, err := s.reg.SearchCandidatesTotal.GetMetricWithLabelValues(op, outcome)
	s.Require().NoError(err)
	var m dto.Metric
	s.Require().NoError(c.Write(&m))
	return m.Counter.GetValue()
}

func (s *FinderSuite) TestNewRejectsBadBounds() {
	_, err := topology.New(0, 0)
	s.Require().ErrorIs(err, topology.ErrInvalidArgument)
}

func (s *FinderSuite) TestSeedKnown() {
	s.Require().Equal(5, s.finder.SeedKnown())
	s.Require().Equal(5.0, s.counter("seed", "accepted"))

	var m dto.Metric
	s.Require().NoError(s.reg.CatalogueEntries.Write(&m))
	s.Require().Equal(5.0, m.Gauge.GetValue())

	small, err := topology.New(8, 2)
	s.Require().NoError(err)
	s.Require().Equal(2, small.SeedKnown())
}

func (s *FinderSuite) TestLoadReference() {
	const data = `id,nodes,degree,diameter,girth,extra
petersen,10,3,2,5,x
short,4
bad,x,3,2
inf,12,3,Inf
big,1000,3,5,1,1
"cube", 8, 3, 3, 4, y
`
	n, err := s.finder.LoadReference(strings.NewReader(data))
	s.Require().NoError(err)
	s.Require().Equal(2, n)

	b := s.finder.Table().Bucket(10, 3)
	s.Require().Len(b, 1)
	s.Require().Equal(optimal(10, 3, "DistReg(petersen)", 2), b[0])
	s.Require().Equal("DistReg(cube)", s.finder.Table().Bucket(8, 3)[0].Name)
	s.Require().Equal(1.0, s.counter("reference", "rejected"))
}

func (s *FinderSuite) TestSearch() {
	s.finder.SeedKnown()
	s.Require().NoError(s.finder.Search(context.Background()))

	tbl := s.finder.Table()
	maxN, maxD := tbl.Bounds()
	tbl.Each(func(n, d int, b []topology.Entry) {
		s.Require().LessOrEqual(n, maxN)
		s.Require().LessOrEqual(d, maxD)
		front := pareto.Frontier(b,
			func(e topology.Entry) float64 { return float64(e.TL) },
			func(e topology.Entry) float64 { return e.TB },
			func(e topology.Entry) float64 { return float64(e.NestLevel) },
			topology.FrontierEpsilon)
		s.Require().Len(front, len(b), "bucket (%d,%d) is not a frontier", n, d)
		for _, e := range b {
			s.Require().Equal(n, e.N)
			s.Require().Equal(d, e.D)
		}
	})

	// complete graphs give latency 1 wherever d = N−1
	for n := 2; n <= maxD+1; n++ {
		b := tbl.Bucket(n, n-1)
		s.Require().NotEmpty(b)
		s.Require().Equal(1, b[0].TL)
	}

	s.Require().Equal([]string{"K(3, 3)"}, names(tbl.Bucket(6, 3)))
	s.Require().Equal([]string{"diamond"}, names(tbl.Bucket(8, 2)))
	s.Require().Positive(s.counter("product", "accepted"))
	s.Require().Positive(s.counter("degree", "accepted"))
	s.Require().Positive(s.counter("power", "accepted"))
	s.Require().Positive(s.counter("line", "accepted"))
}

func (s *FinderSuite) TestSearchCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.finder.Search(ctx)
	s.Require().True(errors.Is(err, context.Canceled))
}

func names(b []topology.Entry) []string {
	out := make([]string, len(b))
	for i, e := range b {
		out[i] = e.Name
	}
	return out
}

func TestFinderSuite(t *testing.T) {
	suite.Run(t, new(FinderSuite))
}
