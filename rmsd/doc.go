/*
Package rmsd computes optimal rigid-body superpositions of corresponding
atom sets with the Kabsch algorithm, and the RMSD between them.

Fit returns the proper rotation and translation minimizing the sum of
squared distances between a mobile atom set and a reference atom set
with the same length and index correspondence. RMSD measures coordinate
deviation as-is; Superposed fits first and then measures.
*/
package rmsd
