// Package shell provides shell integration for virtualenv activation.
// It emits eval-able export/set lines for the parent shell and generates
// hook snippets (chpwd for Zsh, PROMPT_COMMAND for Bash, --on-variable for
// Fish) that call dotx activate on directory change.
package shell
