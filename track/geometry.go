package track

// Coordinates describe how a vehicle is displaced by traversing an element.
// Rotations are 0-3 for orthogonal directions and 4-7 for diagonal ones.
// X and Y locate the last tile relative to the first, in 1/32 tile units.
type Coordinates struct {
	RotationBegin uint8
	RotationEnd   uint8
	ZBegin        int16
	ZEnd          int16
	X             int16
	Y             int16
}

// IsDiagonalBegin reports whether the element is entered diagonally.
func (c Coordinates) IsDiagonalBegin() bool { return c.RotationBegin >= 4 }

// IsDiagonalEnd reports whether the element is left diagonally.
func (c Coordinates) IsDiagonalEnd() bool { return c.RotationEnd >= 4 }

// Rise is the height difference between the end and the start of the element.
func (c Coordinates) Rise() int16 { return c.ZEnd - c.ZBegin }

var coordinatesTable = [ElemTypeCount]Coordinates{
	Flat:                                    {0, 0, 0, 0, 0, 0},
	EndStation:                              {0, 0, 0, 0, 0, 0},
	BeginStation:                            {0, 0, 0, 0, 0, 0},
	MiddleStation:                           {0, 0, 0, 0, 0, 0},
	Up25:                                    {0, 0, 0, 16, 0, 0},
	Up60:                                    {0, 0, 0, 64, 0, 0},
	FlatToUp25:                              {0, 0, 0, 8, 0, 0},
	Up25ToUp60:                              {0, 0, 0, 24, 0, 0},
	Up60ToUp25:                              {0, 0, 0, 24, 0, 0},
	Up25ToFlat:                              {0, 0, 0, 8, 0, 0},
	Down25:                                  {0, 0, 16, 0, 0, 0},
	Down60:                                  {0, 0, 64, 0, 0, 0},
	FlatToDown25:                            {0, 0, 8, 0, 0, 0},
	Down25ToDown60:                          {0, 0, 24, 0, 0, 0},
	Down60ToDown25:                          {0, 0, 24, 0, 0, 0},
	Down25ToFlat:                            {0, 0, 8, 0, 0, 0},
	LeftQuarterTurn5Tiles:                   {0, 3, 0, 0, -64, -64},
	RightQuarterTurn5Tiles:                  {0, 1, 0, 0, -64, 64},
	FlatToLeftBank:                          {0, 0, 0, 0, 0, 0},
	FlatToRightBank:                         {0, 0, 0, 0, 0, 0},
	LeftBankToFlat:                          {0, 0, 0, 0, 0, 0},
	RightBankToFlat:                         {0, 0, 0, 0, 0, 0},
	BankedLeftQuarterTurn5Tiles:             {0, 3, 0, 0, -64, -64},
	BankedRightQuarterTurn5Tiles:            {0, 1, 0, 0, -64, 64},
	LeftBankToUp25:                          {0, 0, 0, 8, 0, 0},
	RightBankToUp25:                         {0, 0, 0, 8, 0, 0},
	Up25ToLeftBank:                          {0, 0, 0, 8, 0, 0},
	Up25ToRightBank:                         {0, 0, 0, 8, 0, 0},
	LeftBankToDown25:                        {0, 0, 8, 0, 0, 0},
	RightBankToDown25:                       {0, 0, 8, 0, 0, 0},
	Down25ToLeftBank:                        {0, 0, 8, 0, 0, 0},
	Down25ToRightBank:                       {0, 0, 8, 0, 0, 0},
	LeftBank:                                {0, 0, 0, 0, 0, 0},
	RightBank:                               {0, 0, 0, 0, 0, 0},
	LeftQuarterTurn5TilesUp25:               {0, 3, 0, 64, -64, -64},
	RightQuarterTurn5TilesUp25:              {0, 1, 0, 64, -64, 64},
	LeftQuarterTurn5TilesDown25:             {0, 3, 64, 0, -64, -64},
	RightQuarterTurn5TilesDown25:            {0, 1, 64, 0, -64, 64},
	SBendLeft:                               {0, 0, 0, 0, -64, -32},
	SBendRight:                              {0, 0, 0, 0, -64, 32},
	LeftVerticalLoop:                        {0, 0, 0, 0, -32, -32},
	RightVerticalLoop:                       {0, 0, 0, 0, -32, 32},
	LeftQuarterTurn3Tiles:                   {0, 3, 0, 0, -32, -32},
	RightQuarterTurn3Tiles:                  {0, 1, 0, 0, -32, 32},
	LeftBankedQuarterTurn3Tiles:             {0, 3, 0, 0, -32, -32},
	RightBankedQuarterTurn3Tiles:            {0, 1, 0, 0, -32, 32},
	LeftQuarterTurn3TilesUp25:               {0, 3, 0, 32, -32, -32},
	RightQuarterTurn3TilesUp25:              {0, 1, 0, 32, -32, 32},
	LeftQuarterTurn3TilesDown25:             {0, 3, 32, 0, -32, -32},
	RightQuarterTurn3TilesDown25:            {0, 1, 32, 0, -32, 32},
	LeftQuarterTurn1Tile:                    {0, 3, 0, 0, 0, 0},
	RightQuarterTurn1Tile:                   {0, 1, 0, 0, 0, 0},
	LeftTwistDownToUp:                       {0, 0, 0, 0, -64, 0},
	RightTwistDownToUp:                      {0, 0, 0, 0, -64, 0},
	LeftTwistUpToDown:                       {0, 0, 0, 0, -64, 0},
	RightTwistUpToDown:                      {0, 0, 0, 0, -64, 0},
	HalfLoopUp:                              {0, 2, 0, 152, -32, 0},
	HalfLoopDown:                            {0, 2, 152, 0, -32, 0},
	LeftCorkscrewUp:                         {0, 3, 0, 32, -32, -32},
	RightCorkscrewUp:                        {0, 1, 0, 32, -32, 32},
	LeftCorkscrewDown:                       {0, 3, 32, 0, -32, -32},
	RightCorkscrewDown:                      {0, 1, 32, 0, -32, 32},
	FlatToUp60:                              {0, 0, 0, 24, 0, 0},
	Up60ToFlat:                              {0, 0, 0, 24, 0, 0},
	FlatToDown60:                            {0, 0, 24, 0, 0, 0},
	Down60ToFlat:                            {0, 0, 24, 0, 0, 0},
	TowerBase:                               {0, 0, 0, 96, -32, 32},
	TowerSection:                            {0, 0, 0, 32, 0, 0},
	FlatCovered:                             {0, 0, 0, 0, 0, 0},
	Up25Covered:                             {0, 0, 0, 16, 0, 0},
	Up60Covered:                             {0, 0, 0, 64, 0, 0},
	FlatToUp25Covered:                       {0, 0, 0, 8, 0, 0},
	Up25ToUp60Covered:                       {0, 0, 0, 24, 0, 0},
	Up60ToUp25Covered:                       {0, 0, 0, 24, 0, 0},
	Up25ToFlatCovered:                       {0, 0, 0, 8, 0, 0},
	Down25Covered:                           {0, 0, 16, 0, 0, 0},
	Down60Covered:                           {0, 0, 64, 0, 0, 0},
	FlatToDown25Covered:                     {0, 0, 8, 0, 0, 0},
	Down25ToDown60Covered:                   {0, 0, 24, 0, 0, 0},
	Down60ToDown25Covered:                   {0, 0, 24, 0, 0, 0},
	Down25ToFlatCovered:                     {0, 0, 8, 0, 0, 0},
	LeftQuarterTurn5TilesCovered:            {0, 3, 0, 0, -64, -64},
	RightQuarterTurn5TilesCovered:           {0, 1, 0, 0, -64, 64},
	SBendLeftCovered:                        {0, 0, 0, 0, -64, -32},
	SBendRightCovered:                       {0, 0, 0, 0, -64, 32},
	LeftQuarterTurn3TilesCovered:            {0, 3, 0, 0, -32, -32},
	RightQuarterTurn3TilesCovered:           {0, 1, 0, 0, -32, 32},
	LeftHalfBankedHelixUpSmall:              {0, 2, 0, 8, 0, -64},
	RightHalfBankedHelixUpSmall:             {0, 2, 0, 8, 0, 64},
	LeftHalfBankedHelixDownSmall:            {0, 2, 8, 0, 0, -64},
	RightHalfBankedHelixDownSmall:           {0, 2, 8, 0, 0, 64},
	LeftHalfBankedHelixUpLarge:              {0, 2, 0, 16, 0, -128},
	RightHalfBankedHelixUpLarge:             {0, 2, 0, 16, 0, 128},
	LeftHalfBankedHelixDownLarge:            {0, 2, 16, 0, 0, -128},
	RightHalfBankedHelixDownLarge:           {0, 2, 16, 0, 0, 128},
	LeftQuarterTurn1TileUp60:                {0, 3, 0, 64, 0, 0},
	RightQuarterTurn1TileUp60:               {0, 1, 0, 64, 0, 0},
	LeftQuarterTurn1TileDown60:              {0, 3, 64, 0, 0, 0},
	RightQuarterTurn1TileDown60:             {0, 1, 64, 0, 0, 0},
	Brakes:                                  {0, 0, 0, 0, 0, 0},
	Booster:                                 {0, 0, 0, 0, 0, 0},
	Maze:                                    {0, 0, 0, 0, 0, 0},
	LeftQuarterBankedHelixLargeUp:           {0, 3, 0, 16, -64, -64},
	RightQuarterBankedHelixLargeUp:          {0, 1, 0, 16, -64, 64},
	LeftQuarterBankedHelixLargeDown:         {0, 3, 16, 0, -64, -64},
	RightQuarterBankedHelixLargeDown:        {0, 1, 16, 0, -64, 64},
	LeftQuarterHelixLargeUp:                 {0, 3, 0, 16, -64, -64},
	RightQuarterHelixLargeUp:                {0, 1, 0, 16, -64, 64},
	LeftQuarterHelixLargeDown:               {0, 3, 16, 0, -64, -64},
	RightQuarterHelixLargeDown:              {0, 1, 16, 0, -64, 64},
	Up25LeftBanked:                          {0, 0, 0, 16, 0, 0},
	Up25RightBanked:                         {0, 0, 0, 16, 0, 0},
	Waterfall:                               {0, 0, 0, 0, 0, 0},
	Rapids:                                  {0, 0, 0, 0, 0, 0},
	OnRidePhoto:                             {0, 0, 0, 0, 0, 0},
	Down25LeftBanked:                        {0, 0, 16, 0, 0, 0},
	Down25RightBanked:                       {0, 0, 16, 0, 0, 0},
	Watersplash:                             {0, 0, 0, 0, -128, 0},
	FlatToUp60LongBase:                      {0, 0, 0, 56, -96, 0},
	Up60ToFlatLongBase:                      {0, 0, 0, 56, -96, 0},
	Whirlpool:                               {0, 0, 0, 0, 0, 0},
	Down60ToFlatLongBase:                    {0, 0, 56, 0, -96, 0},
	FlatToDown60LongBase:                    {0, 0, 56, 0, -96, 0},
	CableLiftHill:                           {0, 0, 0, 96, -96, 0},
	ReverseFreefallSlope:                    {0, 0, 0, 112, -192, 0},
	ReverseFreefallVertical:                 {0, 0, 0, 32, 0, 0},
	Up90:                                    {0, 0, 0, 32, 0, 0},
	Down90:                                  {0, 0, 32, 0, 0, 0},
	Up60ToUp90:                              {0, 0, 0, 56, 0, 0},
	Down90ToDown60:                          {0, 0, 56, 0, 0, 0},
	Up90ToUp60:                              {0, 0, 0, 56, 0, 0},
	Down60ToDown90:                          {0, 0, 56, 0, 0, 0},
	BrakeForDrop:                            {0, 0, 8, 0, 0, 0},
	LeftEighthToDiag:                        {0, 4, 0, 0, -64, -32},
	RightEighthToDiag:                       {0, 5, 0, 0, -64, 32},
	LeftEighthToOrthogonal:                  {4, 3, 0, 0, -64, -32},
	RightEighthToOrthogonal:                 {5, 1, 0, 0, -64, 32},
	LeftEighthBankToDiag:                    {0, 4, 0, 0, -64, -32},
	RightEighthBankToDiag:                   {0, 5, 0, 0, -64, 32},
	LeftEighthBankToOrthogonal:              {4, 3, 0, 0, -64, -32},
	RightEighthBankToOrthogonal:             {5, 1, 0, 0, -64, 32},
	DiagFlat:                                {4, 4, 0, 0, -32, 32},
	DiagUp25:                                {4, 4, 0, 32, -32, 32},
	DiagUp60:                                {4, 4, 0, 96, -32, 32},
	DiagFlatToUp25:                          {4, 4, 0, 16, -32, 32},
	DiagUp25ToUp60:                          {4, 4, 0, 48, -32, 32},
	DiagUp60ToUp25:                          {4, 4, 0, 48, -32, 32},
	DiagUp25ToFlat:                          {4, 4, 0, 16, -32, 32},
	DiagDown25:                              {4, 4, 32, 0, -32, 32},
	DiagDown60:                              {4, 4, 96, 0, -32, 32},
	DiagFlatToDown25:                        {4, 4, 16, 0, -32, 32},
	DiagDown25ToDown60:                      {4, 4, 48, 0, -32, 32},
	DiagDown60ToDown25:                      {4, 4, 48, 0, -32, 32},
	DiagDown25ToFlat:                        {4, 4, 16, 0, -32, 32},
	DiagFlatToUp60:                          {4, 4, 0, 32, -32, 32},
	DiagUp60ToFlat:                          {4, 4, 0, 32, -32, 32},
	DiagFlatToDown60:                        {4, 4, 32, 0, -32, 32},
	DiagDown60ToFlat:                        {4, 4, 32, 0, -32, 32},
	DiagFlatToLeftBank:                      {4, 4, 0, 0, -32, 32},
	DiagFlatToRightBank:                     {4, 4, 0, 0, -32, 32},
	DiagLeftBankToFlat:                      {4, 4, 0, 0, -32, 32},
	DiagRightBankToFlat:                     {4, 4, 0, 0, -32, 32},
	DiagLeftBankToUp25:                      {4, 4, 0, 16, -32, 32},
	DiagRightBankToUp25:                     {4, 4, 0, 16, -32, 32},
	DiagUp25ToLeftBank:                      {4, 4, 0, 16, -32, 32},
	DiagUp25ToRightBank:                     {4, 4, 0, 16, -32, 32},
	DiagLeftBankToDown25:                    {4, 4, 16, 0, -32, 32},
	DiagRightBankToDown25:                   {4, 4, 16, 0, -32, 32},
	DiagDown25ToLeftBank:                    {4, 4, 16, 0, -32, 32},
	DiagDown25ToRightBank:                   {4, 4, 16, 0, -32, 32},
	DiagLeftBank:                            {4, 4, 0, 0, -32, 32},
	DiagRightBank:                           {4, 4, 0, 0, -32, 32},
	LogFlumeReverser:                        {0, 2, 0, 0, -64, 0},
	SpinningTunnel:                          {0, 0, 0, 0, 0, 0},
	LeftBarrelRollUpToDown:                  {0, 0, 0, 0, -64, 0},
	RightBarrelRollUpToDown:                 {0, 0, 0, 0, -64, 0},
	LeftBarrelRollDownToUp:                  {0, 0, 0, 0, -64, 0},
	RightBarrelRollDownToUp:                 {0, 0, 0, 0, -64, 0},
	LeftBankToLeftQuarterTurn3TilesUp25:     {0, 3, 0, 32, -32, -32},
	RightBankToRightQuarterTurn3TilesUp25:   {0, 1, 0, 32, -32, 32},
	LeftQuarterTurn3TilesDown25ToLeftBank:   {0, 3, 32, 0, -32, -32},
	RightQuarterTurn3TilesDown25ToRightBank: {0, 1, 32, 0, -32, 32},
	PoweredLift:                             {0, 0, 0, 16, 0, 0},
	LeftLargeHalfLoopUp:                     {0, 2, 0, 280, -64, -32},
	RightLargeHalfLoopUp:                    {0, 2, 0, 280, -64, 32},
	RightLargeHalfLoopDown:                  {0, 2, 280, 0, -64, 32},
	LeftLargeHalfLoopDown:                   {0, 2, 280, 0, -64, -32},
	LeftFlyerTwistUp:                        {0, 0, 0, 0, -64, 0},
	RightFlyerTwistUp:                       {0, 0, 0, 0, -64, 0},
	LeftFlyerTwistDown:                      {0, 0, 0, 0, -64, 0},
	RightFlyerTwistDown:                     {0, 0, 0, 0, -64, 0},
	FlyerHalfLoopUninvertedUp:               {0, 2, 0, 152, -32, 0},
	FlyerHalfLoopInvertedDown:               {0, 2, 152, 0, -32, 0},
	LeftFlyerCorkscrewUp:                    {0, 3, 0, 32, -32, -32},
	RightFlyerCorkscrewUp:                   {0, 1, 0, 32, -32, 32},
	LeftFlyerCorkscrewDown:                  {0, 3, 32, 0, -32, -32},
	RightFlyerCorkscrewDown:                 {0, 1, 32, 0, -32, 32},
	HeartLineTransferUp:                     {0, 0, 0, 32, -96, 0},
	HeartLineTransferDown:                   {0, 0, 32, 0, -96, 0},
	LeftHeartLineRoll:                       {0, 0, 0, 0, -160, 0},
	RightHeartLineRoll:                      {0, 0, 0, 0, -160, 0},
	MinigolfHoleA:                           {0, 0, 0, 0, -32, 0},
	MinigolfHoleB:                           {0, 0, 0, 0, -32, 0},
	MinigolfHoleC:                           {0, 0, 0, 0, -32, 0},
	MinigolfHoleD:                           {0, 3, 0, 0, -32, -32},
	MinigolfHoleE:                           {0, 1, 0, 0, -32, 32},
	MultiDimInvertedFlatToDown90QuarterLoop: {0, 2, 96, 0, 32, 0},
	Up90ToInvertedFlatQuarterLoop:           {0, 2, 0, 96, -32, 0},
	InvertedFlatToDown90QuarterLoop:         {0, 2, 96, 0, 32, 0},
	LeftCurvedLiftHill:                      {0, 3, 0, 32, -32, -32},
	RightCurvedLiftHill:                     {0, 1, 0, 32, -32, 32},
	LeftReverser:                            {0, 2, 0, 0, -64, -32},
	RightReverser:                           {0, 2, 0, 0, -64, 32},
	AirThrustTopCap:                         {0, 2, 0, 0, 32, 0},
	AirThrustVerticalDown:                   {0, 0, 32, 0, 0, 0},
	AirThrustVerticalDownToLevel:            {0, 0, 112, 0, -160, 0},
	BlockBrakes:                             {0, 0, 0, 0, 0, 0},
	LeftBankedQuarterTurn3TileUp25:          {0, 3, 0, 32, -32, -32},
	RightBankedQuarterTurn3TileUp25:         {0, 1, 0, 32, -32, 32},
	LeftBankedQuarterTurn3TileDown25:        {0, 3, 32, 0, -32, -32},
	RightBankedQuarterTurn3TileDown25:       {0, 1, 32, 0, -32, 32},
	LeftBankedQuarterTurn5TileUp25:          {0, 3, 0, 64, -64, -64},
	RightBankedQuarterTurn5TileUp25:         {0, 1, 0, 64, -64, 64},
	LeftBankedQuarterTurn5TileDown25:        {0, 3, 64, 0, -64, -64},
	RightBankedQuarterTurn5TileDown25:       {0, 1, 64, 0, -64, 64},
	Up25ToLeftBankedUp25:                    {0, 0, 0, 16, 0, 0},
	Up25ToRightBankedUp25:                   {0, 0, 0, 16, 0, 0},
	LeftBankedUp25ToUp25:                    {0, 0, 0, 16, 0, 0},
	RightBankedUp25ToUp25:                   {0, 0, 0, 16, 0, 0},
	Down25ToLeftBankedDown25:                {0, 0, 16, 0, 0, 0},
	Down25ToRightBankedDown25:               {0, 0, 16, 0, 0, 0},
	LeftBankedDown25ToDown25:                {0, 0, 16, 0, 0, 0},
	RightBankedDown25ToDown25:               {0, 0, 16, 0, 0, 0},
	LeftBankedFlatToLeftBankedUp25:          {0, 0, 0, 8, 0, 0},
	RightBankedFlatToRightBankedUp25:        {0, 0, 0, 8, 0, 0},
	LeftBankedUp25ToLeftBankedFlat:          {0, 0, 0, 8, 0, 0},
	RightBankedUp25ToRightBankedFlat:        {0, 0, 0, 8, 0, 0},
	LeftBankedFlatToLeftBankedDown25:        {0, 0, 8, 0, 0, 0},
	RightBankedFlatToRightBankedDown25:      {0, 0, 8, 0, 0, 0},
	LeftBankedDown25ToLeftBankedFlat:        {0, 0, 8, 0, 0, 0},
	RightBankedDown25ToRightBankedFlat:      {0, 0, 8, 0, 0, 0},
	FlatToLeftBankedUp25:                    {0, 0, 0, 8, 0, 0},
	FlatToRightBankedUp25:                   {0, 0, 0, 8, 0, 0},
	LeftBankedUp25ToFlat:                    {0, 0, 0, 8, 0, 0},
	RightBankedUp25ToFlat:                   {0, 0, 0, 8, 0, 0},
	FlatToLeftBankedDown25:                  {0, 0, 8, 0, 0, 0},
	FlatToRightBankedDown25:                 {0, 0, 8, 0, 0, 0},
	LeftBankedDown25ToFlat:                  {0, 0, 8, 0, 0, 0},
	RightBankedDown25ToFlat:                 {0, 0, 8, 0, 0, 0},
	LeftQuarterTurn1TileUp90:                {0, 3, 0, 32, 0, 0},
	RightQuarterTurn1TileUp90:               {0, 1, 0, 32, 0, 0},
	LeftQuarterTurn1TileDown90:              {0, 3, 32, 0, 0, 0},
	RightQuarterTurn1TileDown90:             {0, 1, 32, 0, 0, 0},
	MultiDimUp90ToInvertedFlatQuarterLoop:   {0, 2, 0, 96, -32, 0},
	MultiDimFlatToDown90QuarterLoop:         {0, 2, 96, 0, 32, 0},
	MultiDimInvertedUp90ToFlatQuarterLoop:   {0, 2, 0, 96, -32, 0},
	RotationControlToggle:                   {0, 0, 0, 0, 0, 0},
	FlatTrack1x4A:                           {0, 0, 0, 0, -96, 0},
	FlatTrack2x2:                            {0, 0, 0, 0, -32, 32},
	FlatTrack4x4:                            {0, 0, 0, 0, -96, 96},
	FlatTrack2x4:                            {0, 0, 0, 0, -96, 32},
	FlatTrack1x5:                            {0, 0, 0, 0, -128, 0},
	FlatTrack1x1A:                           {0, 0, 0, 0, 0, 0},
	FlatTrack1x4B:                           {0, 0, 0, 0, -96, 0},
	FlatTrack1x1B:                           {0, 0, 0, 0, 0, 0},
	FlatTrack1x4C:                           {0, 0, 0, 0, -96, 0},
	FlatTrack3x3:                            {0, 0, 0, 0, -64, 64},
	LeftLargeCorkscrewUp:                    {0, 3, 0, 64, -64, -64},
	RightLargeCorkscrewUp:                   {0, 1, 0, 64, -64, 64},
	LeftLargeCorkscrewDown:                  {0, 3, 64, 0, -64, -64},
	RightLargeCorkscrewDown:                 {0, 1, 64, 0, -64, 64},
	LeftMediumHalfLoopUp:                    {0, 2, 0, 216, -64, -32},
	RightMediumHalfLoopUp:                   {0, 2, 0, 216, -64, 32},
	LeftMediumHalfLoopDown:                  {0, 2, 216, 0, -64, -32},
	RightMediumHalfLoopDown:                 {0, 2, 216, 0, -64, 32},
	LeftZeroGRollUp:                         {0, 0, 0, 56, -64, 0},
	RightZeroGRollUp:                        {0, 0, 0, 56, -64, 0},
	LeftZeroGRollDown:                       {0, 0, 56, 0, -64, 0},
	RightZeroGRollDown:                      {0, 0, 56, 0, -64, 0},
	LeftLargeZeroGRollUp:                    {0, 0, 0, 152, -96, 0},
	RightLargeZeroGRollUp:                   {0, 0, 0, 152, -96, 0},
	LeftLargeZeroGRollDown:                  {0, 0, 152, 0, -96, 0},
	RightLargeZeroGRollDown:                 {0, 0, 152, 0, -96, 0},
	LeftFlyerLargeHalfLoopUninvertedUp:      {0, 2, 0, 280, -64, -32},
	RightFlyerLargeHalfLoopUninvertedUp:     {0, 2, 0, 280, -64, 32},
	LeftFlyerLargeHalfLoopInvertedDown:      {0, 2, 280, 0, -64, -32},
	RightFlyerLargeHalfLoopInvertedDown:     {0, 2, 280, 0, -64, 32},
	LeftFlyerLargeHalfLoopInvertedUp:        {0, 2, 0, 280, -64, -32},
	RightFlyerLargeHalfLoopInvertedUp:       {0, 2, 0, 280, -64, 32},
	LeftFlyerLargeHalfLoopUninvertedDown:    {0, 2, 280, 0, -64, -32},
	RightFlyerLargeHalfLoopUninvertedDown:   {0, 2, 280, 0, -64, 32},
	FlyerHalfLoopInvertedUp:                 {0, 2, 0, 152, -32, 0},
	FlyerHalfLoopUninvertedDown:             {0, 2, 152, 0, -32, 0},
	DiagBrakes:                              {4, 4, 0, 0, -32, 32},
	DiagBlockBrakes:                         {4, 4, 0, 0, -32, 32},
	Down25Brakes:                            {0, 0, 16, 0, 0, 0},
	DiagBooster:                             {4, 4, 0, 0, -32, 32},
}

// pieceLengthTable is the nominal distance travelled along each element.
var pieceLengthTable = [ElemTypeCount]int16{
	Flat:                                    32,
	EndStation:                              32,
	BeginStation:                            32,
	MiddleStation:                           32,
	Up25:                                    33,
	Up60:                                    40,
	FlatToUp25:                              32,
	Up25ToUp60:                              34,
	Up60ToUp25:                              34,
	Up25ToFlat:                              32,
	Down25:                                  33,
	Down60:                                  40,
	FlatToDown25:                            32,
	Down25ToDown60:                          34,
	Down60ToDown25:                          34,
	Down25ToFlat:                            32,
	LeftQuarterTurn5Tiles:                   124,
	RightQuarterTurn5Tiles:                  124,
	FlatToLeftBank:                          32,
	FlatToRightBank:                         32,
	LeftBankToFlat:                          32,
	RightBankToFlat:                         32,
	BankedLeftQuarterTurn5Tiles:             124,
	BankedRightQuarterTurn5Tiles:            124,
	LeftBankToUp25:                          32,
	RightBankToUp25:                         32,
	Up25ToLeftBank:                          32,
	Up25ToRightBank:                         32,
	LeftBankToDown25:                        32,
	RightBankToDown25:                       32,
	Down25ToLeftBank:                        32,
	Down25ToRightBank:                       32,
	LeftBank:                                32,
	RightBank:                               32,
	LeftQuarterTurn5TilesUp25:               130,
	RightQuarterTurn5TilesUp25:              130,
	LeftQuarterTurn5TilesDown25:             130,
	RightQuarterTurn5TilesDown25:            130,
	SBendLeft:                               96,
	SBendRight:                              96,
	LeftVerticalLoop:                        311,
	RightVerticalLoop:                       311,
	LeftQuarterTurn3Tiles:                   75,
	RightQuarterTurn3Tiles:                  75,
	LeftBankedQuarterTurn3Tiles:             75,
	RightBankedQuarterTurn3Tiles:            75,
	LeftQuarterTurn3TilesUp25:               77,
	RightQuarterTurn3TilesUp25:              77,
	LeftQuarterTurn3TilesDown25:             77,
	RightQuarterTurn3TilesDown25:            77,
	LeftQuarterTurn1Tile:                    24,
	RightQuarterTurn1Tile:                   24,
	LeftTwistDownToUp:                       96,
	RightTwistDownToUp:                      96,
	LeftTwistUpToDown:                       96,
	RightTwistUpToDown:                      96,
	HalfLoopUp:                              156,
	HalfLoopDown:                            156,
	LeftCorkscrewUp:                         96,
	RightCorkscrewUp:                        96,
	LeftCorkscrewDown:                       96,
	RightCorkscrewDown:                      96,
	FlatToUp60:                              48,
	Up60ToFlat:                              48,
	FlatToDown60:                            48,
	Down60ToFlat:                            48,
	TowerBase:                               16,
	TowerSection:                            16,
	FlatCovered:                             32,
	Up25Covered:                             33,
	Up60Covered:                             40,
	FlatToUp25Covered:                       32,
	Up25ToUp60Covered:                       34,
	Up60ToUp25Covered:                       34,
	Up25ToFlatCovered:                       32,
	Down25Covered:                           33,
	Down60Covered:                           40,
	FlatToDown25Covered:                     32,
	Down25ToDown60Covered:                   34,
	Down60ToDown25Covered:                   34,
	Down25ToFlatCovered:                     32,
	LeftQuarterTurn5TilesCovered:            124,
	RightQuarterTurn5TilesCovered:           124,
	SBendLeftCovered:                        96,
	SBendRightCovered:                       96,
	LeftQuarterTurn3TilesCovered:            75,
	RightQuarterTurn3TilesCovered:           75,
	LeftHalfBankedHelixUpSmall:              80,
	RightHalfBankedHelixUpSmall:             80,
	LeftHalfBankedHelixDownSmall:            80,
	RightHalfBankedHelixDownSmall:           80,
	LeftHalfBankedHelixUpLarge:              192,
	RightHalfBankedHelixUpLarge:             192,
	LeftHalfBankedHelixDownLarge:            192,
	RightHalfBankedHelixDownLarge:           192,
	LeftQuarterTurn1TileUp60:                28,
	RightQuarterTurn1TileUp60:               28,
	LeftQuarterTurn1TileDown60:              28,
	RightQuarterTurn1TileDown60:             28,
	Brakes:                                  32,
	Booster:                                 32,
	Maze:                                    32,
	LeftQuarterBankedHelixLargeUp:           124,
	RightQuarterBankedHelixLargeUp:          124,
	LeftQuarterBankedHelixLargeDown:         124,
	RightQuarterBankedHelixLargeDown:        124,
	LeftQuarterHelixLargeUp:                 124,
	RightQuarterHelixLargeUp:                124,
	LeftQuarterHelixLargeDown:               124,
	RightQuarterHelixLargeDown:              124,
	Up25LeftBanked:                          33,
	Up25RightBanked:                         33,
	Waterfall:                               32,
	Rapids:                                  32,
	OnRidePhoto:                             32,
	Down25LeftBanked:                        33,
	Down25RightBanked:                       33,
	Watersplash:                             176,
	FlatToUp60LongBase:                      92,
	Up60ToFlatLongBase:                      92,
	Whirlpool:                               32,
	Down60ToFlatLongBase:                    92,
	FlatToDown60LongBase:                    92,
	CableLiftHill:                           96,
	ReverseFreefallSlope:                    128,
	ReverseFreefallVertical:                 16,
	Up90:                                    16,
	Down90:                                  16,
	Up60ToUp90:                              32,
	Down90ToDown60:                          32,
	Up90ToUp60:                              32,
	Down60ToDown90:                          32,
	BrakeForDrop:                            32,
	LeftEighthToDiag:                        87,
	RightEighthToDiag:                       87,
	LeftEighthToOrthogonal:                  87,
	RightEighthToOrthogonal:                 87,
	LeftEighthBankToDiag:                    87,
	RightEighthBankToDiag:                   87,
	LeftEighthBankToOrthogonal:              87,
	RightEighthBankToOrthogonal:             87,
	DiagFlat:                                45,
	DiagUp25:                                45,
	DiagUp60:                                45,
	DiagFlatToUp25:                          45,
	DiagUp25ToUp60:                          45,
	DiagUp60ToUp25:                          45,
	DiagUp25ToFlat:                          45,
	DiagDown25:                              45,
	DiagDown60:                              45,
	DiagFlatToDown25:                        45,
	DiagDown25ToDown60:                      45,
	DiagDown60ToDown25:                      45,
	DiagDown25ToFlat:                        45,
	DiagFlatToUp60:                          45,
	DiagUp60ToFlat:                          45,
	DiagFlatToDown60:                        45,
	DiagDown60ToFlat:                        45,
	DiagFlatToLeftBank:                      45,
	DiagFlatToRightBank:                     45,
	DiagLeftBankToFlat:                      45,
	DiagRightBankToFlat:                     45,
	DiagLeftBankToUp25:                      45,
	DiagRightBankToUp25:                     45,
	DiagUp25ToLeftBank:                      45,
	DiagUp25ToRightBank:                     45,
	DiagLeftBankToDown25:                    45,
	DiagRightBankToDown25:                   45,
	DiagDown25ToLeftBank:                    45,
	DiagDown25ToRightBank:                   45,
	DiagLeftBank:                            45,
	DiagRightBank:                           45,
	LogFlumeReverser:                        96,
	SpinningTunnel:                          32,
	LeftBarrelRollUpToDown:                  96,
	RightBarrelRollUpToDown:                 96,
	LeftBarrelRollDownToUp:                  96,
	RightBarrelRollDownToUp:                 96,
	LeftBankToLeftQuarterTurn3TilesUp25:     77,
	RightBankToRightQuarterTurn3TilesUp25:   77,
	LeftQuarterTurn3TilesDown25ToLeftBank:   77,
	RightQuarterTurn3TilesDown25ToRightBank: 77,
	PoweredLift:                             32,
	LeftLargeHalfLoopUp:                     312,
	RightLargeHalfLoopUp:                    312,
	RightLargeHalfLoopDown:                  312,
	LeftLargeHalfLoopDown:                   312,
	LeftFlyerTwistUp:                        96,
	RightFlyerTwistUp:                       96,
	LeftFlyerTwistDown:                      96,
	RightFlyerTwistDown:                     96,
	FlyerHalfLoopUninvertedUp:               156,
	FlyerHalfLoopInvertedDown:               156,
	LeftFlyerCorkscrewUp:                    96,
	RightFlyerCorkscrewUp:                   96,
	LeftFlyerCorkscrewDown:                  96,
	RightFlyerCorkscrewDown:                 96,
	HeartLineTransferUp:                     144,
	HeartLineTransferDown:                   144,
	LeftHeartLineRoll:                       192,
	RightHeartLineRoll:                      192,
	MinigolfHoleA:                           64,
	MinigolfHoleB:                           64,
	MinigolfHoleC:                           64,
	MinigolfHoleD:                           64,
	MinigolfHoleE:                           64,
	MultiDimInvertedFlatToDown90QuarterLoop: 138,
	Up90ToInvertedFlatQuarterLoop:           138,
	InvertedFlatToDown90QuarterLoop:         138,
	LeftCurvedLiftHill:                      77,
	RightCurvedLiftHill:                     77,
	LeftReverser:                            32,
	RightReverser:                           32,
	AirThrustTopCap:                         96,
	AirThrustVerticalDown:                   16,
	AirThrustVerticalDownToLevel:            128,
	BlockBrakes:                             32,
	LeftBankedQuarterTurn3TileUp25:          77,
	RightBankedQuarterTurn3TileUp25:         77,
	LeftBankedQuarterTurn3TileDown25:        77,
	RightBankedQuarterTurn3TileDown25:       77,
	LeftBankedQuarterTurn5TileUp25:          130,
	RightBankedQuarterTurn5TileUp25:         130,
	LeftBankedQuarterTurn5TileDown25:        130,
	RightBankedQuarterTurn5TileDown25:       130,
	Up25ToLeftBankedUp25:                    33,
	Up25ToRightBankedUp25:                   33,
	LeftBankedUp25ToUp25:                    33,
	RightBankedUp25ToUp25:                   33,
	Down25ToLeftBankedDown25:                33,
	Down25ToRightBankedDown25:               33,
	LeftBankedDown25ToDown25:                33,
	RightBankedDown25ToDown25:               33,
	LeftBankedFlatToLeftBankedUp25:          32,
	RightBankedFlatToRightBankedUp25:        32,
	LeftBankedUp25ToLeftBankedFlat:          32,
	RightBankedUp25ToRightBankedFlat:        32,
	LeftBankedFlatToLeftBankedDown25:        32,
	RightBankedFlatToRightBankedDown25:      32,
	LeftBankedDown25ToLeftBankedFlat:        32,
	RightBankedDown25ToRightBankedFlat:      32,
	FlatToLeftBankedUp25:                    32,
	FlatToRightBankedUp25:                   32,
	LeftBankedUp25ToFlat:                    32,
	RightBankedUp25ToFlat:                   32,
	FlatToLeftBankedDown25:                  32,
	FlatToRightBankedDown25:                 32,
	LeftBankedDown25ToFlat:                  32,
	RightBankedDown25ToFlat:                 32,
	LeftQuarterTurn1TileUp90:                40,
	RightQuarterTurn1TileUp90:               40,
	LeftQuarterTurn1TileDown90:              40,
	RightQuarterTurn1TileDown90:             40,
	MultiDimUp90ToInvertedFlatQuarterLoop:   138,
	MultiDimFlatToDown90QuarterLoop:         138,
	MultiDimInvertedUp90ToFlatQuarterLoop:   138,
	RotationControlToggle:                   32,
	FlatTrack1x4A:                           128,
	FlatTrack2x2:                            64,
	FlatTrack4x4:                            128,
	FlatTrack2x4:                            128,
	FlatTrack1x5:                            160,
	FlatTrack1x1A:                           32,
	FlatTrack1x4B:                           128,
	FlatTrack1x1B:                           32,
	FlatTrack1x4C:                           128,
	FlatTrack3x3:                            96,
	LeftLargeCorkscrewUp:                    192,
	RightLargeCorkscrewUp:                   192,
	LeftLargeCorkscrewDown:                  192,
	RightLargeCorkscrewDown:                 192,
	LeftMediumHalfLoopUp:                    245,
	RightMediumHalfLoopUp:                   245,
	LeftMediumHalfLoopDown:                  245,
	RightMediumHalfLoopDown:                 245,
	LeftZeroGRollUp:                         96,
	RightZeroGRollUp:                        96,
	LeftZeroGRollDown:                       96,
	RightZeroGRollDown:                      96,
	LeftLargeZeroGRollUp:                    192,
	RightLargeZeroGRollUp:                   192,
	LeftLargeZeroGRollDown:                  192,
	RightLargeZeroGRollDown:                 192,
	LeftFlyerLargeHalfLoopUninvertedUp:      312,
	RightFlyerLargeHalfLoopUninvertedUp:     312,
	LeftFlyerLargeHalfLoopInvertedDown:      312,
	RightFlyerLargeHalfLoopInvertedDown:     312,
	LeftFlyerLargeHalfLoopInvertedUp:        312,
	RightFlyerLargeHalfLoopInvertedUp:       312,
	LeftFlyerLargeHalfLoopUninvertedDown:    312,
	RightFlyerLargeHalfLoopUninvertedDown:   312,
	FlyerHalfLoopInvertedUp:                 156,
	FlyerHalfLoopUninvertedDown:             156,
	DiagBrakes:                              45,
	DiagBlockBrakes:                         45,
	Down25Brakes:                            33,
	DiagBooster:                             45,
}
