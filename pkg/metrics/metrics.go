package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	KindView   = "view"
	KindLike   = "like"
	KindUnlike = "unlike"
	KindDelete = "delete"
)

// StatWrites 统计计数写入次数，按类型区分
var StatWrites = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stats_writes_total",
		Help: "Total number of stat counter writes",
	},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(StatWrites)
}
