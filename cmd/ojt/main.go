package main

import (
	"context"

	"online-judge-toolchain/cmd/ojt/commands"
	"online-judge-toolchain/lib/osutil"
)

func main() {
	ctx, cancel := osutil.SignalContext(context.Background())
	defer cancel()
	commands.ExecuteContext(ctx)
}
