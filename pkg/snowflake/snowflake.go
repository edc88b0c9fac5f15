package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成菜谱/评论等行 ID
func GenID() int64 {
	return node.Generate().Int64()
}
