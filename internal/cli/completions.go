package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/osmodel/internal/device"
	"github.com/vvka-141/osmodel/internal/element"
	"github.com/vvka-141/osmodel/internal/system"
)

func matchPrefix(values []string, toComplete string) []string {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, toComplete) {
			matches = append(matches, v)
		}
	}
	return matches
}

// completeKinds provides shell completion for the --kind flag.
func completeKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var names []string
	for _, k := range element.Kinds() {
		names = append(names, k.String())
	}
	return matchPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeConsumePolicies provides shell completion for the --consume-policy flag.
func completeConsumePolicies(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := []string{string(device.PolicySingleConsumerGlobal), string(device.PolicyPerObserver)}
	return matchPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeOperations completes the last entry of a comma-separated --ops value.
func completeOperations(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	head, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		head, last = toComplete[:i+1], toComplete[i+1:]
	}
	var matches []string
	for _, op := range system.Operations {
		if strings.HasPrefix(string(op), last) {
			matches = append(matches, head+string(op))
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
