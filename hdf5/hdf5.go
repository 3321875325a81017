// Package hdf5 records simulation frames to an HDF5 file.
//
// Each dataset has a leading dimension of length Steps;
// row k holds the data of the k-th rendered frame.
package hdf5

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/PrincetonUniversity/gassim"
	"github.com/PrincetonUniversity/gassim/driver"
	"gonum.org/v1/hdf5"
)

// A Dataset stipulates how to extract data from a frame and where to store them in the HDF5 file.
type Dataset struct {
	// Name the name of the dataset in the HDF5 file.
	Name string

	// Val is a value of the same concrete type as the underlying type of the data.
	Val interface{}

	// Dims are the dimensions of the data for a single frame.
	Dims []int

	// Data is a function that produces the data
	// as a pointer to a slice of row-major concrete values.
	Data func(f driver.Frame) interface{}

	dset   *hdf5.Dataset
	fspace *hdf5.Dataspace
	mspace *hdf5.Dataspace
}

// Config holds the parameters of the HDF5 recorder.
type Config struct {
	Output   string     // path of output file
	Steps    int        // total number of frames
	Datasets []*Dataset // list of datasets

	// Attrs is a pointer to a struct whose fields are saved
	// as attributes of the "config" dataset. May be nil.
	Attrs interface{}

	// Progress receives a percentage after each frame. May be nil.
	Progress io.Writer
}

// A Recorder is a driver.Renderer writing frames to an HDF5 file.
type Recorder struct {
	conf *Config
	file *hdf5.File
	k    uint
}

// Create creates the output file and its datasets.
func Create(conf *Config) (r *Recorder, err error) {
	if conf.Steps <= 0 {
		return nil, fmt.Errorf("hdf5: steps must be positive, got %d", conf.Steps)
	}
	if err := os.MkdirAll(filepath.Dir(conf.Output), 0755); err != nil {
		return nil, err
	}

	file, err := hdf5.CreateFile(conf.Output, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, err
	}
	r = &Recorder{conf: conf, file: file}
	defer func() {
		if err != nil {
			r.Close()
			r = nil
		}
	}()

	if err := saveConfig(file, conf.Attrs); err != nil {
		return r, err
	}
	for _, d := range conf.Datasets {
		if err := d.init(file, conf); err != nil {
			return r, fmt.Errorf("dataset %q: %w", d.Name, err)
		}
	}
	return r, nil
}

// Render writes f as the next row of every dataset.
// It returns driver.ErrStop once Steps frames have been written.
func (r *Recorder) Render(f driver.Frame) error {
	if r.k >= uint(r.conf.Steps) {
		return driver.ErrStop
	}
	for _, d := range r.conf.Datasets {
		start := make([]uint, len(d.Dims)+1)
		start[0] = r.k
		if err := d.fspace.SetOffset(start); err != nil {
			return err
		}
		if err := d.dset.WriteSubset(d.Data(f), d.mspace, d.fspace); err != nil {
			return err
		}
	}
	r.k++

	// show progress as percentage
	if w := r.conf.Progress; w != nil {
		if r.k == uint(r.conf.Steps) {
			fmt.Fprintf(w, "\r100%%\n")
		} else {
			fmt.Fprintf(w, "\r% 3d%%", 100*r.k/uint(r.conf.Steps))
		}
	}
	return nil
}

// Close closes the datasets and the file.
func (r *Recorder) Close() (err error) {
	for _, d := range r.conf.Datasets {
		if d.dset != nil {
			checkClose(&err, d)
		}
	}
	checkClose(&err, r.file)
	return err
}

// A dataPoint is what is recorded in the HDF5 file for each particle at each frame.
// This structure is mapped to a compound datatype in HDF5 so member names are important.
type dataPoint struct {
	Pos gassim.Vec2 // position
	Vel gassim.Vec2 // velocity
}

// Particles returns a dataset named "particles" holding the position
// and velocity of n particles per frame.
func Particles(n int) *Dataset {
	buf := make([]dataPoint, n)
	return &Dataset{
		Name: "particles",
		Val:  dataPoint{},
		Dims: []int{n},
		Data: func(f driver.Frame) interface{} {
			for i, b := range f.Bodies {
				buf[i] = dataPoint{Pos: b.Pos, Vel: b.Vel}
			}
			return &buf
		},
	}
}

// Radii returns a dataset named "radius" holding the radius of n particles per frame.
func Radii(n int) *Dataset {
	buf := make([]float64, n)
	return &Dataset{
		Name: "radius",
		Val:  0.0,
		Dims: []int{n},
		Data: func(f driver.Frame) interface{} {
			for i, b := range f.Bodies {
				buf[i] = b.Radius
			}
			return &buf
		},
	}
}

// saveConfig creates a "config" dataset with a null dataspace whose attributes
// reflect the whole configuration plus some other appropriate metadata.
func saveConfig(file *hdf5.File, attrs interface{}) (err error) {
	null, err := hdf5.CreateDataspace(hdf5.S_NULL)
	if err != nil {
		return err
	}
	defer checkClose(&err, null)

	anytype, err := hdf5.NewDatatypeFromValue(0)
	if err != nil {
		return err
	}
	defer checkClose(&err, anytype)

	dset, err := file.CreateDataset("config", anytype, null)
	if err != nil {
		return err
	}
	defer checkClose(&err, dset)

	scalar, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return err
	}
	defer checkClose(&err, scalar)

	now := time.Now().String()
	if err := writeAttr(dset, scalar, "Time", &now); err != nil {
		return err
	}

	if attrs == nil {
		return nil
	}
	v := reflect.ValueOf(attrs).Elem()
	for i := 0; i < v.NumField(); i++ {
		if err := writeAttr(dset, scalar, v.Type().Field(i).Name, v.Field(i).Addr().Interface()); err != nil {
			return fmt.Errorf("attribute %s: %w", v.Type().Field(i).Name, err)
		}
	}
	return nil
}

// writeAttr writes the value pointed to by ptr as a scalar attribute of dset.
func writeAttr(dset *hdf5.Dataset, scalar *hdf5.Dataspace, name string, ptr interface{}) (err error) {
	dtype, err := hdf5.NewDatatypeFromValue(reflect.ValueOf(ptr).Elem().Interface())
	if err != nil {
		return err
	}
	defer checkClose(&err, dtype)

	attr, err := dset.CreateAttribute(name, dtype, scalar)
	if err != nil {
		return err
	}
	defer checkClose(&err, attr)

	return attr.Write(ptr, dtype)
}

// init creates the dataset and its dataspaces in file.
func (d *Dataset) init(file *hdf5.File, conf *Config) (err error) {
	dtype, err := hdf5.NewDatatypeFromValue(d.Val)
	if err != nil {
		return err
	}
	defer checkClose(&err, dtype)

	udims := make([]uint, len(d.Dims)+1)
	udims[0] = uint(conf.Steps)
	for i, n := range d.Dims {
		udims[i+1] = uint(n)
	}

	d.fspace, err = hdf5.CreateSimpleDataspace(udims, nil)
	if err != nil {
		return err
	}

	start := make([]uint, len(udims))
	count := make([]uint, len(udims))
	copy(count, udims)
	count[0] = 1

	if err := d.fspace.SelectHyperslab(start, nil, count, nil); err != nil {
		checkClose(&err, d.fspace)
		return err
	}

	if len(d.Dims) == 0 {
		d.mspace, err = hdf5.CreateDataspace(hdf5.S_SCALAR)
	} else {
		d.mspace, err = hdf5.CreateSimpleDataspace(udims[1:], nil)
	}
	if err != nil {
		checkClose(&err, d.fspace)
		return err
	}

	d.dset, err = file.CreateDataset(d.Name, dtype, d.fspace)
	if err != nil {
		checkClose(&err, d.fspace)
		checkClose(&err, d.mspace)
	}

	return err
}

// Close closes the HDF5 dataset and Dataspaces.
func (d *Dataset) Close() error {
	if err := d.dset.Close(); err != nil {
		return err
	}
	if err := d.mspace.Close(); err != nil {
		return err
	}
	if err := d.fspace.Close(); err != nil {
		return err
	}
	return nil
}

// checkClose checks for errors in deferred calls.
func checkClose(err *error, c io.Closer) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}
