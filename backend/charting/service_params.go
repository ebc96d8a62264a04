package charting

import (
	url2 "github.com/fernandosanchezjr/bitinverter/backend/url"
	"net/url"
)

const MaxHistory = 1000

type ServiceParams struct {
	Count      int
	Refresh    bool
	Strategies []string
}

func ParseServiceParams(values url.Values) (params *ServiceParams, err error) {
	params = &ServiceParams{
		Count:   50,
		Refresh: true,
	}
	if err = url2.ParseIntRange("count", values, 1, MaxHistory, &params.Count); err != nil {
		return
	}
	if err = url2.ParseBool("refresh", values, &params.Refresh); err != nil {
		return
	}
	url2.ParseList("strategies", values, &params.Strategies)
	return
}
