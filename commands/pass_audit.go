package commands

import "github.com/pivotal-cf/pass-audit/config"

type PassAuditCommand struct {
	ConfigFile string        `long:"config-file" description:"path to a YAML config file" value-name:"PATH"`
	Settings   config.Config `group:"Settings"`

	Check    CheckCommand    `command:"check" description:"Check a password against breach dictionaries and rate its strength"`
	Generate GenerateCommand `command:"generate" description:"Generate strong passwords"`
	Batch    BatchCommand    `command:"batch" description:"Analyze a file of passwords, one per line"`
	Merge    MergeCommand    `command:"merge" description:"Merge dictionaries into one sorted, de-duplicated file"`
	Info     InfoCommand     `command:"info" description:"Show where pass-audit gets its data"`
	Version  VersionCommand  `command:"version" description:"Displays pass-audit version" alias:"V"`
}

var PassAudit PassAuditCommand
