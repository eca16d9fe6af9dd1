package shardcommit

import (
	"encoding/hex"
	"fmt"
)

// NotEnoughShardsError is returned from [Recover]
// when fewer shards are present than the number of data shards.
type NotEnoughShardsError struct {
	Have, Need int
}

func (e NotEnoughShardsError) Error() string {
	return fmt.Sprintf("not enough shards to recover data: have %d, need %d", e.Have, e.Need)
}

// RootMismatchError is returned from [Recover]
// when the reconstructed shards do not reproduce the committed root.
// This indicates at least one of the supplied shards was corrupt.
type RootMismatchError struct {
	Want, Got []byte
}

func (e RootMismatchError) Error() string {
	return fmt.Sprintf(
		"reconstructed shards produced root %s, expected %s",
		hex.EncodeToString(e.Got), hex.EncodeToString(e.Want),
	)
}
