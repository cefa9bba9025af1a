package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deptdesk/models"
)

func iv(day models.Day, start, end int, owner string) TimeInterval {
	return TimeInterval{Day: day, StartMinute: start, EndMinute: end, OwnerID: owner}
}

func TestGroupOverlapsEmpty(t *testing.T) {
	assert.Nil(t, GroupOverlaps(nil))
}

func TestGroupOverlapsSingleton(t *testing.T) {
	clusters := GroupOverlaps([]TimeInterval{iv(models.Monday, 540, 600, "ann")})
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Intervals, 1)
}

// Two overlapping morning shifts form one cluster.
func TestGroupOverlapsOverlappingPair(t *testing.T) {
	clusters := GroupOverlaps([]TimeInterval{
		iv(models.Monday, 9*60, 10*60, "ann"),
		iv(models.Monday, 9*60+30, 10*60+30, "bob"),
	})
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Intervals, 2)
}

// Back-to-back shifts that touch are not overlapping and must split.
func TestGroupOverlapsTouchingSplit(t *testing.T) {
	clusters := GroupOverlaps([]TimeInterval{
		iv(models.Monday, 8*60, 9*60, "ann"),
		iv(models.Monday, 9*60, 10*60, "bob"),
		iv(models.Monday, 10*60, 11*60, "cyd"),
	})
	require.Len(t, clusters, 3)
	for _, c := range clusters {
		assert.Len(t, c.Intervals, 1)
	}
}

// A long shift bridges otherwise disjoint short shifts into one cluster.
func TestGroupOverlapsBridging(t *testing.T) {
	clusters := GroupOverlaps([]TimeInterval{
		iv(models.Monday, 9*60, 13*60, "ann"),
		iv(models.Monday, 9*60, 10*60, "bob"),
		iv(models.Monday, 11*60, 12*60, "cyd"),
	})
	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Intervals, 3)
}

// Every input interval lands in exactly one cluster, and clusters come out
// identical under any input permutation.
func TestGroupOverlapsPartitionAndDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(20)
		intervals := make([]TimeInterval, n)
		for i := range intervals {
			start := rng.Intn(1380)
			intervals[i] = iv(models.Monday, start, start+1+rng.Intn(180), string(rune('a'+i%26))+string(rune('0'+i/26)))
		}

		reference := GroupOverlaps(intervals)

		total := 0
		for _, c := range reference {
			total += len(c.Intervals)
		}
		require.Equal(t, n, total, "clusters must partition the input")

		shuffled := make([]TimeInterval, n)
		copy(shuffled, intervals)
		rng.Shuffle(n, func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, reference, GroupOverlaps(shuffled))
	}
}

// No interval in one cluster overlaps any interval of another.
func TestGroupOverlapsMaximality(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		n := 2 + rng.Intn(15)
		intervals := make([]TimeInterval, n)
		for i := range intervals {
			start := rng.Intn(1300)
			intervals[i] = iv(models.Friday, start, start+15+rng.Intn(120), string(rune('a'+i)))
		}
		clusters := GroupOverlaps(intervals)
		for i, a := range clusters {
			for _, b := range clusters[i+1:] {
				for _, x := range a.Intervals {
					for _, y := range b.Intervals {
						assert.False(t, x.Overlaps(y),
							"intervals in distinct clusters must not overlap: %+v vs %+v", x, y)
					}
				}
			}
		}
	}
}
