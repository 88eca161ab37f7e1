package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	alerts []Alert
	err    error
}

func (r *recorder) Notify(ctx context.Context, alert Alert) error {
	r.alerts = append(r.alerts, alert)
	return r.err
}

func TestMulti(t *testing.T) {
	failing := &recorder{err: errors.New("webhook down")}
	ok := &recorder{}

	err := Multi{failing, ok}.Notify(context.Background(), Alert{Subject: "app misconfigured"})

	assert.ErrorContains(t, err, "webhook down")
	assert.Len(t, failing.alerts, 1)
	assert.Len(t, ok.alerts, 1)

	assert.NoError(t, Multi{}.Notify(context.Background(), Alert{}))
}
