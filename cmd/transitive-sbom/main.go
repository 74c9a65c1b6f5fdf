package main

import (
	"os"

	"github.com/joshyorko/transitive-sbom/cmd"
	"github.com/joshyorko/transitive-sbom/common"
	"github.com/joshyorko/transitive-sbom/pretty"
)

func ExitProtection() {
	status := recover()
	if status != nil {
		exit, ok := status.(common.ExitCode)
		if ok {
			exit.ShowMessage()
			common.WaitLogs()
			os.Exit(exit.Code)
		}
		common.WaitLogs()
		panic(status)
	}
	common.WaitLogs()
}

func main() {
	defer ExitProtection()
	pretty.Setup()

	cmd.Execute()
}
