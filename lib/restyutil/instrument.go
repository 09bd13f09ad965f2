package restyutil

import (
	"fmt"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
)

type InstrumentOutput interface {
	Write(id string, contents string)
}

// InstrumentClient dumps every completed exchange of the client into
// `output`, named by a counter that starts at 1. If `output` is nil the
// function is a no-op.
func InstrumentClient(client *resty.Client, output InstrumentOutput) {
	if output == nil {
		return
	}

	var idcounter uint64
	client.OnAfterResponse(func(_ *resty.Client, res *resty.Response) error {
		id := atomic.AddUint64(&idcounter, 1)
		output.Write(
			fmt.Sprintf("%03d-%s.txt", id, res.Request.Method),
			FormatHttpMessage(res),
		)
		return nil
	})
}
