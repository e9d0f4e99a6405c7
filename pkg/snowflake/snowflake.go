package snowflake

import (
	"strconv"

	"github.com/bwmarrin/snowflake"
)

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

func genID() int64 {
	return node.Generate().Int64()
}

// GenString 请求 ID
func GenString() string {
	return strconv.FormatInt(genID(), 10)
}
