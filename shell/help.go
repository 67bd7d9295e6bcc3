package shell

import (
	"embed"
	"errors"
	"path"
)

//go:embed helptext
var helptext embed.FS

func usage(topic string) (string, error) {
	dat, err := helptext.ReadFile(path.Join("helptext", topic+".txt"))
	if err != nil {
		return "", errors.New("there is no help text for the topic " + topic)
	}
	return string(dat), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	topic := "usage"
	if len(cmd.args) > 0 {
		topic = cmd.args[0]
	}
	text, err := usage(topic)
	if err != nil {
		return nil, err
	}
	return msg(text), nil
}
