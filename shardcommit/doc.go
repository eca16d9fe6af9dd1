// Package shardcommit commits to a blob of data
// by splitting it into Reed-Solomon data and parity shards
// and building one flatmerkle tree over every shard.
//
// The root of that tree attests to the whole set of shards.
// A holder of any NumData shards can rebuild the missing ones with [Recover],
// which only returns the original data if the rebuilt shards
// reproduce the committed root.
package shardcommit
