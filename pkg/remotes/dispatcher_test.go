//go:build unit
// +build unit

package remotes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pkgrove/revscan/pkg/graph"
)

func TestDispatcher_RoutesByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	conan := NewMockService(ctrl)
	index := NewMockService(ctrl)
	d := NewDispatcher()
	d.Register(KindConan, conan)
	d.Register(KindGitHub, index)

	ref := graph.Ref{Name: "zlib", Version: "1.3"}
	conanRemote := Remote{Name: "corp", Kind: KindConan}
	indexRemote := Remote{Name: "index", Kind: KindGitHub}

	conan.EXPECT().LatestRecipeRevision(gomock.Any(), ref, conanRemote).
		Return(&Revision{Revision: "r1"}, nil)
	index.EXPECT().LatestRecipeRevision(gomock.Any(), ref, indexRemote).
		Return(&Revision{Revision: "sha"}, nil)

	ctx := context.Background()
	rev, err := d.LatestRecipeRevision(ctx, ref, conanRemote)
	require.NoError(t, err)
	require.Equal(t, "r1", rev.Revision)

	rev, err = d.LatestRecipeRevision(ctx, ref, indexRemote)
	require.NoError(t, err)
	require.Equal(t, "sha", rev.Revision)
}

func TestDispatcher_UnknownKind(t *testing.T) {
	d := NewDispatcher()
	ctx := context.Background()
	remote := Remote{Name: "weird", Kind: "ftp"}

	_, err := d.LatestRecipeRevision(ctx, graph.Ref{Name: "zlib", Version: "1.3"}, remote)
	require.ErrorContains(t, err, `unsupported kind "ftp"`)

	_, err = d.LatestPackageRevision(ctx, graph.PackageRef{}, remote)
	require.Error(t, err)

	_, err = d.SearchVersions(ctx, "zlib", remote)
	require.Error(t, err)
}
