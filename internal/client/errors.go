package client

import "errors"

var errAppDependencies = errors.New("client app requires services and a UI")
