package shell

import (
	"github.com/chzyer/readline"
)

var setOptions = []string{"depth", "first", "parallel", "pruning", "searchlog"}

var helpTopics = []string{"new", "play", "set", "autoplay", "script"}

func newCompleter() *readline.PrefixCompleter {
	setItems := make([]readline.PrefixCompleterInterface, 0, len(setOptions))
	for _, o := range setOptions {
		setItems = append(setItems, readline.PcItem(o))
	}
	helpItems := make([]readline.PrefixCompleterInterface, 0, len(helpTopics))
	for _, t := range helpTopics {
		helpItems = append(helpItems, readline.PcItem(t))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("new", readline.PcItem("-first"), readline.PcItem("-depth")),
		readline.PcItem("play"),
		readline.PcItem("ai"),
		readline.PcItem("hint"),
		readline.PcItem("show"),
		readline.PcItem("history"),
		readline.PcItem("eval"),
		readline.PcItem("set", setItems...),
		readline.PcItem("autoplay",
			readline.PcItem("-games"), readline.PcItem("-threads"),
			readline.PcItem("-depthx"), readline.PcItem("-deptho"),
			readline.PcItem("-random"), readline.PcItem("-logfile")),
		readline.PcItem("script"),
		readline.PcItem("help", helpItems...),
		readline.PcItem("exit"),
	)
}
