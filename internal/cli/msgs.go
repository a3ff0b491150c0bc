package cli

// Command descriptions
const (
	MsgRootShort = "Render a page of command examples in the terminal"
	MsgRootLong  = `pageprint renders a page of command examples: a "# title", "> description"
lines, "- usage" bullets and backtick-wrapped example commands.

Inline markers are highlighted: <urls> and ` + "`inline code`" + ` in descriptions,
` + "`inline code`" + ` in bullets and {{placeholders}} in examples. Lines matching no
marker are ignored.

The page is read from the given file, or from standard input when the file
is omitted or "-".`
	MsgRootExample = `  # Render a page
  pageprint pages/common/tar.md

  # Render from a pipe, without blank lines
  cat tar.md | pageprint --compact

  # Show the page source unchanged
  pageprint --raw tar.md`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	MsgConfigShort = "Print the effective configuration"
	MsgConfigLong  = `Print the configuration pageprint would use, after merging the built-in
defaults, the config file, PAGEPRINT_ environment variables and flags.

With --default, print the commented default configuration file instead.`

	MsgCompletionShort = "Generate shell completion script"
	MsgCompletionLong  = `To load completions:

Bash:
  $ source <(pageprint completion bash)

Zsh:
  $ pageprint completion zsh > "${fpath[1]}/_pageprint"

Fish:
  $ pageprint completion fish | source

PowerShell:
  PS> pageprint completion powershell | Out-String | Invoke-Expression`

	MsgManShort = "Generate man pages"
)

// Flag descriptions
const (
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default $XDG_CONFIG_HOME/pageprint/config.toml)"
	MsgFlagRaw       = "Print the page source without any formatting"
	MsgFlagCompact   = "Remove blank lines"
	MsgFlagShowTitle = "Show the page title"
	MsgFlagColor     = "When to use colors: auto, always or never"
	MsgFlagTheme     = "YAML theme file"
	MsgFlagDefault   = "Print the commented default configuration"
	MsgFlagManDir    = "Directory to write man pages to"
)

// Version output
const (
	MsgVersionFormat = "pageprint version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)
