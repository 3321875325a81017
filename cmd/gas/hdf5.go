package main

import (
	"io"
	"os"

	"github.com/PrincetonUniversity/gassim/driver"
	"github.com/PrincetonUniversity/gassim/hdf5"
)

// RunHDF5 runs a simulation and saves data to an HDF5 file.
func RunHDF5(conf *Config, d *driver.Driver, stats driver.Renderer) (err error) {
	rec, err := hdf5.Create(&hdf5.Config{
		Output: conf.Output,
		Steps:  conf.Steps,
		Datasets: []*hdf5.Dataset{
			hdf5.Particles(conf.Particles),
			hdf5.Radii(conf.Particles),
		},
		Attrs:    conf,
		Progress: os.Stdout,
	})
	if err != nil {
		return err
	}
	defer checkClose(&err, rec)

	return d.RunSteps(conf.Steps, driver.Multi(rec, stats))
}

// checkClose checks for errors in deferred calls.
func checkClose(err *error, c io.Closer) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}
