package conshash

import (
	logging "github.com/ipfs/go-log/v2"
)

// Silent unless the embedding process enables it, e.g. GOLOG_LOG_LEVEL="conshash=debug".
var log = logging.Logger("conshash")
