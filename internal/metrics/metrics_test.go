package metrics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCloudWatch struct {
	mu     sync.Mutex
	inputs []*cloudwatch.PutMetricDataInput
	err    error
}

func (f *fakeCloudWatch) PutMetricData(_ context.Context, in *cloudwatch.PutMetricDataInput, _ ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, in)
	return &cloudwatch.PutMetricDataOutput{}, f.err
}

func (f *fakeCloudWatch) names() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var names []string
	for _, in := range f.inputs {
		for _, d := range in.MetricData {
			names = append(names, aws.ToString(d.MetricName))
		}
	}
	return names
}

func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		status int
		want   []string
	}{
		{200, []string{"APIRequests", "APILatency"}},
		{404, []string{"APIRequests", "APILatency"}},
		{500, []string{"APIErrors", "APILatency"}},
	}
	for _, tt := range tests {
		fake := &fakeCloudWatch{}
		newClient(fake, "production", false).RecordAPIRequest("/api/v1/songs", tt.status, 20*time.Millisecond)
		assert.Equal(t, tt.want, fake.names(), "status %d", tt.status)
	}
}

func TestRecordGeneration(t *testing.T) {
	fake := &fakeCloudWatch{}
	client := newClient(fake, "production", false)

	client.RecordGeneration(Generation{Parts: 2, Bars: 40, Duration: time.Millisecond, Success: true})
	assert.Equal(t, []string{"SongsGenerated", "BarsGenerated", "GenerationDuration"}, fake.names())

	require.Len(t, fake.inputs, 3)
	assert.Equal(t, namespace, aws.ToString(fake.inputs[0].Namespace))
	assert.InDelta(t, 40, aws.ToFloat64(fake.inputs[1].MetricData[0].Value), 0)

	fake = &fakeCloudWatch{}
	newClient(fake, "production", false).RecordGeneration(Generation{Success: false})
	assert.Equal(t, []string{"GenerationDuration"}, fake.names())
}

func TestRecordStorage(t *testing.T) {
	fake := &fakeCloudWatch{err: errors.New("throttled")}
	client := newClient(fake, "production", false)

	client.RecordStorage("dynamodb", "create", time.Millisecond, errors.New("boom"))
	assert.Equal(t, []string{"StorageErrors", "StorageLatency"}, fake.names())

	dims := fake.inputs[0].MetricData[0].Dimensions
	require.Len(t, dims, 3)
	assert.Equal(t, "dynamodb", aws.ToString(dims[0].Value))
	assert.Equal(t, "create", aws.ToString(dims[2].Value))
}

func TestDisabledClientOutsideProduction(t *testing.T) {
	client, err := NewClient(context.Background(), "development")
	require.NoError(t, err)

	// must not panic without an AWS client
	client.RecordAPIRequest("/health", 200, time.Millisecond)
	client.RecordGeneration(Generation{Success: true})
	client.RecordStorage("memory", "get", time.Millisecond, nil)
}

func TestMulti(t *testing.T) {
	fake := &fakeCloudWatch{}
	m := &Multi{Sentry: NewSentryMetrics(), CloudWatch: newClient(fake, "production", false)}

	m.RecordGeneration(context.Background(), Generation{Bars: 8, Success: true})
	m.RecordStorage(context.Background(), "postgres", "get", time.Millisecond, nil)
	assert.Equal(t, []string{"SongsGenerated", "BarsGenerated", "GenerationDuration", "StorageLatency"}, fake.names())

	var nop Recorder = Nop{}
	nop.RecordGeneration(context.Background(), Generation{})
}
