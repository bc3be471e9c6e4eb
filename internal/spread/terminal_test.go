package spread

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/abhinav/dirspread/internal/log/logtest"
	"github.com/abhinav/dirspread/internal/macterm/mactermtest"
	"github.com/abhinav/dirspread/internal/session"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMacBackend(t *testing.T) {
	t.Parallel()

	parent := newParent(t, "api", "my web")

	ctrl := gomock.NewController(t)
	driver := mactermtest.NewMockDriver(ctrl)

	gomock.InOrder(
		driver.EXPECT().NewWindow(),
		driver.EXPECT().SetWindowTitle("work"),

		driver.EXPECT().NewTab(),
		driver.EXPECT().DoScript("cd "+filepath.Join(parent, "api")),
		driver.EXPECT().SetTabTitle("API"),
		driver.EXPECT().DoScript("make run"),

		driver.EXPECT().NewTab(),
		driver.EXPECT().DoScript("cd '"+filepath.Join(parent, "my web")+"'"),

		driver.EXPECT().NextTab(),
		driver.EXPECT().CloseTab(),
	)

	backend := MacBackend{Driver: driver, Log: logtest.NewLogger(t)}
	err := backend.OpenSession(&session.Session{
		Parent:     parent,
		WindowName: "work",
		Dirs: []session.Descriptor{
			{DirName: "api", DisplayName: "API", OnOpen: "make run"},
			{DirName: "missing", OnOpen: "rm -rf ."},
			{DirName: "my web"},
		},
	})
	require.NoError(t, err)
}

func TestMacBackend_noTitle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	driver := mactermtest.NewMockDriver(ctrl)

	gomock.InOrder(
		driver.EXPECT().NewWindow(),
		driver.EXPECT().NextTab(),
		driver.EXPECT().CloseTab(),
	)

	backend := MacBackend{Driver: driver}
	require.NoError(t, backend.OpenSession(&session.Session{
		Parent: newParent(t),
		Dirs:   []session.Descriptor{{DirName: "missing"}},
	}))
}

func TestMacBackend_errors(t *testing.T) {
	t.Parallel()

	giveErr := errors.New("great sadness")

	tests := []struct {
		desc       string
		setup      func(*mactermtest.MockDriver)
		wantAction string
		wantDir    string
	}{
		{
			desc: "open window",
			setup: func(d *mactermtest.MockDriver) {
				d.EXPECT().NewWindow().Return(giveErr)
			},
			wantAction: "open window",
		},
		{
			desc: "window title",
			setup: func(d *mactermtest.MockDriver) {
				gomock.InOrder(
					d.EXPECT().NewWindow(),
					d.EXPECT().SetWindowTitle("work").Return(giveErr),
				)
			},
			wantAction: "set window title",
		},
		{
			desc: "open tab",
			setup: func(d *mactermtest.MockDriver) {
				gomock.InOrder(
					d.EXPECT().NewWindow(),
					d.EXPECT().SetWindowTitle("work"),
					d.EXPECT().NewTab().Return(giveErr),
				)
			},
			wantAction: "open tab",
			wantDir:    "a",
		},
		{
			desc: "change directory",
			setup: func(d *mactermtest.MockDriver) {
				gomock.InOrder(
					d.EXPECT().NewWindow(),
					d.EXPECT().SetWindowTitle("work"),
					d.EXPECT().NewTab(),
					d.EXPECT().DoScript(gomock.Any()).Return(giveErr),
				)
			},
			wantAction: "change directory",
			wantDir:    "a",
		},
		{
			desc: "tab title",
			setup: func(d *mactermtest.MockDriver) {
				gomock.InOrder(
					d.EXPECT().NewWindow(),
					d.EXPECT().SetWindowTitle("work"),
					d.EXPECT().NewTab(),
					d.EXPECT().DoScript(gomock.Any()),
					d.EXPECT().SetTabTitle("A").Return(giveErr),
				)
			},
			wantAction: "set tab title",
			wantDir:    "a",
		},
		{
			desc: "run command",
			setup: func(d *mactermtest.MockDriver) {
				gomock.InOrder(
					d.EXPECT().NewWindow(),
					d.EXPECT().SetWindowTitle("work"),
					d.EXPECT().NewTab(),
					d.EXPECT().DoScript(gomock.Any()),
					d.EXPECT().SetTabTitle("A"),
					d.EXPECT().DoScript("ls").Return(giveErr),
				)
			},
			wantAction: "run command",
			wantDir:    "a",
		},
		{
			desc: "select template tab",
			setup: func(d *mactermtest.MockDriver) {
				gomock.InOrder(
					d.EXPECT().NewWindow(),
					d.EXPECT().SetWindowTitle("work"),
					d.EXPECT().NewTab(),
					d.EXPECT().DoScript(gomock.Any()),
					d.EXPECT().SetTabTitle("A"),
					d.EXPECT().DoScript("ls"),
					d.EXPECT().NextTab().Return(giveErr),
				)
			},
			wantAction: "select template tab",
		},
		{
			desc: "close template tab",
			setup: func(d *mactermtest.MockDriver) {
				gomock.InOrder(
					d.EXPECT().NewWindow(),
					d.EXPECT().SetWindowTitle("work"),
					d.EXPECT().NewTab(),
					d.EXPECT().DoScript(gomock.Any()),
					d.EXPECT().SetTabTitle("A"),
					d.EXPECT().DoScript("ls"),
					d.EXPECT().NextTab(),
					d.EXPECT().CloseTab().Return(giveErr),
				)
			},
			wantAction: "close template tab",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			driver := mactermtest.NewMockDriver(ctrl)
			tt.setup(driver)

			backend := MacBackend{Driver: driver}
			err := backend.OpenSession(&session.Session{
				Parent:     newParent(t, "a"),
				WindowName: "work",
				Dirs: []session.Descriptor{
					{DirName: "a", DisplayName: "A", OnOpen: "ls"},
				},
			})
			require.Error(t, err)

			var perr *ExternalProcessError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantAction, perr.Action)
			assert.Equal(t, tt.wantDir, perr.Dir)
			assert.ErrorIs(t, err, giveErr)
		})
	}
}
