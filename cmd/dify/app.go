package main

import (
	"fmt"
	"os"

	// Packages
	dify "github.com/mutablelogic/go-dify"
	version "github.com/mutablelogic/go-dify/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type UploadCmd struct {
	Path string `arg:"" type:"existingfile" help:"File to upload"`
}

type ParametersCmd struct{}

type FeedbackCmd struct {
	Message string `arg:"" help:"Message identifier"`
	Rating  string `arg:"" enum:"like,dislike" help:"Rating"`
}

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *UploadCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}

	r, err := os.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer r.Close()

	file, err := client.UploadFile(globals.ctx, globals.User, cmd.Path, r)
	if err != nil {
		return err
	}

	fmt.Println(file.Id, file.Name)
	return nil
}

func (cmd *ParametersCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}

	parameters, err := client.GetApplicationParameters(globals.ctx, globals.User)
	if err != nil {
		return err
	}

	fmt.Println(parameters)
	return nil
}

func (cmd *FeedbackCmd) Run(globals *Globals) error {
	client, err := globals.Client()
	if err != nil {
		return err
	}

	response, err := client.MessageFeedback(globals.ctx, cmd.Message, dify.Rating(cmd.Rating), globals.User)
	if err != nil {
		return err
	}

	fmt.Println(response.Result)
	return nil
}

func (cmd *VersionCmd) Run(globals *Globals) error {
	fmt.Println(string(version.JSON(execName())))
	return nil
}
