package system

import (
	"fmt"

	"github.com/vvka-141/osmodel/internal/device"
	"github.com/vvka-141/osmodel/internal/element"
)

// CreateExampleFiles builds the sample tree:
//
//	Directory1 { File1, Directory2 { File2 } }
//	File3
//	Directory3 { File4 }
//
// and adds Directory1, File3 and Directory3 to the roots. A failed insertion
// aborts before anything is added to the roots.
func (o *OS) CreateExampleFiles() error {
	fs := o.fs
	file1 := fs.CreateFile("File1")
	file2 := fs.CreateFile("File2")
	file3 := fs.CreateFile("File3")
	file4 := fs.CreateFile("File4")

	dir1 := fs.CreateDirectory("Directory1")
	dir2 := fs.CreateDirectory("Directory2")
	dir3 := fs.CreateDirectory("Directory3")

	steps := []struct {
		parent *element.Directory
		child  element.Element
	}{
		{dir1, file1},
		{dir1, dir2},
		{dir2, file2},
		{dir3, file4},
	}
	for _, s := range steps {
		if err := s.parent.Add(s.child); err != nil {
			o.log.Error("%v", err)
			return fmt.Errorf("create example files: %w", err)
		}
	}

	for _, root := range []element.Element{dir1, file3, dir3} {
		if err := fs.Add(root); err != nil {
			return fmt.Errorf("create example files: %w", err)
		}
	}
	o.log.Info("Files are created...")
	return nil
}

// DisplayAllFiles logs and returns the full listing of the file system.
func (o *OS) DisplayAllFiles() []string {
	lines := o.fs.DisplayAll()
	for _, line := range lines {
		o.log.Info("%s", line)
	}
	return lines
}

// PrintToFile creates "my-file", adds it to the roots and writes text into
// it through the write adapter.
func (o *OS) PrintToFile(text string) (*element.File, error) {
	file := o.fs.CreateFile("my-file")
	if err := o.fs.Add(file); err != nil {
		return nil, err
	}

	o.log.Info("File Name: %s", file.Name())
	o.log.Info("Current Content: %s", file.Content())
	if err := o.Write(file, text); err != nil {
		return file, fmt.Errorf("print to %s: %w", file.Name(), err)
	}
	o.log.Info("New Content: %s", file.Content())
	return file, nil
}

// SendData adds a new network port to the devices, attaches the configured
// applications to it and sets its data.
func (o *OS) SendData(value string) (*device.NetworkPort, []*device.Application) {
	port := device.NewNetworkPort(o.log)
	o.AddDevice(port)

	apps := make([]*device.Application, 0, len(o.apps))
	for _, name := range o.apps {
		app := device.NewApplication(name, o.tracker, o.log)
		port.Attach(app)
		apps = append(apps, app)
	}

	o.log.Info("------------------------------")
	port.SetData(value)
	return port, apps
}
