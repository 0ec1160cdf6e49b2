package main

import (
	"context"
	"os"

	"github.com/vfg2006/rk-metrics/pkg/appErrors"
)

func main() {
	os.Exit(execute(context.Background()))
}

// execute roda a CLI e devolve o código de saída. Erros saem em JSON no stderr.
func execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	appErr := appErrors.FromError(err)
	_ = appErrors.WriteError(rootCmd.ErrOrStderr(), appErr.Code, appErr.Message, nil)
	return appErrors.ExitCode(appErr.Code)
}
